package conic

import (
	"errors"
	"testing"
)

func TestParseTopic(t *testing.T) {
	for _, topic := range Topics() {
		got, err := ParseTopic(topic.String())
		if err != nil {
			t.Fatalf("ParseTopic(%q): %v", topic, err)
		}
		if got != topic {
			t.Errorf("ParseTopic(%q) = %v", topic, got)
		}
	}

	if _, err := ParseTopic(" Ellipse "); err != nil {
		t.Errorf("expected case-insensitive match, got %v", err)
	}

	_, err := ParseTopic("cardioid")
	if !errors.Is(err, ErrUnknownTopic) {
		t.Errorf("expected ErrUnknownTopic, got %v", err)
	}
}

func TestTopicValid(t *testing.T) {
	if Topic(42).Valid() {
		t.Error("out-of-range topic reported valid")
	}
	if _, err := Topic(-1).MarshalText(); !errors.Is(err, ErrUnknownTopic) {
		t.Errorf("expected ErrUnknownTopic, got %v", err)
	}
	if !TopicParabola.HasCurve() || TopicAdvanced.HasCurve() || TopicHome.HasCurve() {
		t.Error("HasCurve mismatch")
	}
}

func TestParamsWithAndGet(t *testing.T) {
	p := DefaultParams()
	p, err := p.With(ParamSemiMinor, 4.2)
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := p.Get(ParamSemiMinor); v != 4.2 {
		t.Errorf("expected b=4.2, got %f", v)
	}
	if _, err := p.With("q", 1); !errors.Is(err, ErrUnknownParam) {
		t.Errorf("expected ErrUnknownParam, got %v", err)
	}
}

func TestParamsClampAndValidate(t *testing.T) {
	p := Params{Radius: 9, SemiMajor: 0.2, SemiMinor: 3, FocalParameter: 0}
	if err := p.Validate(); !errors.Is(err, ErrParameterBounds) {
		t.Errorf("expected ErrParameterBounds, got %v", err)
	}

	c := p.Clamped()
	if c.Radius != 5 || c.SemiMajor != 1.5 || c.SemiMinor != 3 || c.FocalParameter != 0.5 {
		t.Errorf("unexpected clamp result %+v", c)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("clamped params should validate: %v", err)
	}
	if err := DefaultParams().Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestEditable(t *testing.T) {
	tests := []struct {
		topic Topic
		want  int
	}{
		{TopicHome, 0},
		{TopicCircle, 1},
		{TopicEllipse, 2},
		{TopicHyperbola, 2},
		{TopicParabola, 1},
		{TopicAdvanced, 0},
	}
	for _, tt := range tests {
		if got := len(Editable(tt.topic)); got != tt.want {
			t.Errorf("%s: expected %d editable params, got %d", tt.topic, tt.want, got)
		}
	}
}
