package catalog

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/yarayan327-hash/math-test-KSA-material/internal/conic"
)

func TestGetEveryTopic(t *testing.T) {
	for _, topic := range conic.Topics() {
		e, err := Get(topic)
		if err != nil {
			t.Fatalf("%s: %v", topic, err)
		}
		if e.Topic != topic {
			t.Errorf("%s: entry tagged %s", topic, e.Topic)
		}
		if e.Title == "" {
			t.Errorf("%s: empty title", topic)
		}
		if topic != conic.TopicHome && (e.Formula == "" || len(e.Modules) == 0) {
			t.Errorf("%s: expected formula and modules", topic)
		}
	}
}

func TestGetUnknownTopic(t *testing.T) {
	_, err := Get(conic.Topic(17))
	if !errors.Is(err, conic.ErrUnknownTopic) {
		t.Errorf("expected ErrUnknownTopic, got %v", err)
	}
}

func TestModuleIDsAscending(t *testing.T) {
	next := 1
	for _, e := range All() {
		for _, m := range e.Modules {
			if m.ID != next {
				t.Errorf("expected module %d, got %d (%s)", next, m.ID, m.Title)
			}
			next++
		}
	}
	if next != 11 {
		t.Errorf("expected 10 modules, got %d", next-1)
	}
}

func TestNavLabel(t *testing.T) {
	tests := []struct {
		topic conic.Topic
		want  string
	}{
		{conic.TopicHome, "星际导航系统"},
		{conic.TopicCircle, "圆"},
		{conic.TopicHyperbola, "双曲线"},
		{conic.TopicAdvanced, "高阶·星际穿越"},
	}
	for _, tt := range tests {
		if got := MustGet(tt.topic).NavLabel(); got != tt.want {
			t.Errorf("%s: expected %q, got %q", tt.topic, tt.want, got)
		}
	}
}

func TestKeyPointSummary(t *testing.T) {
	got := MustGet(conic.TopicHyperbola).KeyPointSummary()
	want := "定义与标准方程(定义：距离差绝对值为常数,标准方程(横/竖),渐近线概念); 焦点三角形(几何性质,向量与余弦定理)"
	if got != want {
		t.Errorf("unexpected summary:\n got %s\nwant %s", got, want)
	}
}

func TestGetReturnsCopy(t *testing.T) {
	e := MustGet(conic.TopicEllipse)
	e.Modules[0].KeyPoints[0] = "mutated"
	e.Modules = e.Modules[:1]

	again := MustGet(conic.TopicEllipse)
	if len(again.Modules) != 3 {
		t.Errorf("catalog modules changed: %d", len(again.Modules))
	}
	if strings.Contains(again.Modules[0].KeyPoints[0], "mutated") {
		t.Error("catalog key points changed through a returned entry")
	}
}

func TestAccentMatchesCurveColor(t *testing.T) {
	for _, topic := range conic.Topics() {
		if !topic.HasCurve() {
			continue
		}
		e := MustGet(topic)
		if got := conic.Sample(topic, conic.DefaultParams()).Color; got != e.Accent.Color() {
			t.Errorf("%s: curve color %s, accent %s", topic, got, e.Accent.Color())
		}
	}
}

func TestLevels(t *testing.T) {
	e := MustGet(conic.TopicAdvanced)
	if e.Modules[1].Level != LevelChallenge || e.Modules[1].Duration != "" {
		t.Errorf("unexpected final module %+v", e.Modules[1])
	}
	if LevelIntermediate.String() != "中档" {
		t.Errorf("unexpected label %q", LevelIntermediate)
	}
}

func TestEntryJSON(t *testing.T) {
	data, err := json.Marshal(MustGet(conic.TopicParabola))
	if err != nil {
		t.Fatal(err)
	}
	s := string(data)
	for _, want := range []string{`"topic":"parabola"`, `"icon":"wifi"`, `"color":"#ffcc00"`, `"level":"中档"`} {
		if !strings.Contains(s, want) {
			t.Errorf("expected %s in %s", want, s)
		}
	}
}
