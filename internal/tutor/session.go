package tutor

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/yarayan327-hash/math-test-KSA-material/internal/catalog"
	"github.com/yarayan327-hash/math-test-KSA-material/internal/conic"
	"github.com/yarayan327-hash/math-test-KSA-material/internal/logger"
)

// DefaultTimeout bounds one generation call.
const DefaultTimeout = 30 * time.Second

// Generator produces a reply for a complete prompt. Implementations report
// an absent credential by wrapping ErrMissingCredential.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeneratorFunc adapts a function to Generator.
type GeneratorFunc func(ctx context.Context, prompt string) (string, error)

func (f GeneratorFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

// Turn is an accepted question waiting for its reply.
type Turn struct {
	Seq      int
	Question string
	Prompt   string
}

type Option func(*Session)

func WithTimeout(d time.Duration) Option {
	return func(s *Session) {
		if d > 0 {
			s.timeout = d
		}
	}
}

func WithLogger(l *logger.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

func WithTopic(t conic.Topic) Option {
	return func(s *Session) {
		if t.Valid() {
			s.topic = t
		}
	}
}

// Session is safe for concurrent use.
type Session struct {
	mu         sync.Mutex
	id         string
	topic      conic.Topic
	state      State
	transcript []Message
	seq        int
	created    time.Time

	gen     Generator
	timeout time.Duration
	log     *logger.Logger
}

// NewSession starts a session whose transcript holds only the greeting.
func NewSession(gen Generator, opts ...Option) *Session {
	s := &Session{
		id:         uuid.NewString(),
		topic:      conic.TopicHome,
		state:      StateIdle,
		transcript: []Message{{Role: RoleAssistant, Text: Greeting}},
		created:    time.Now(),
		gen:        gen,
		timeout:    DefaultTimeout,
		log:        logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With("session_id", s.id)
	return s
}

func (s *Session) ID() string { return s.id }

func (s *Session) Created() time.Time { return s.created }

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) Topic() conic.Topic {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.topic
}

// SetTopic changes the chapter used for later prompts. A turn already in
// flight keeps the prompt it was started with.
func (s *Session) SetTopic(t conic.Topic) error {
	if !t.Valid() {
		return fmt.Errorf("tutor: %w: %d", conic.ErrUnknownTopic, int(t))
	}
	s.mu.Lock()
	s.topic = t
	s.mu.Unlock()
	return nil
}

// Transcript returns a copy of the messages in order.
func (s *Session) Transcript() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.transcript)
}

// Begin accepts a question. It returns false, changing nothing, for blank
// text or while another turn is in flight.
func (s *Session) Begin(text string) (Turn, bool) {
	if strings.TrimSpace(text) == "" {
		return Turn{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateSending {
		return Turn{}, false
	}

	entry, err := catalog.Get(s.topic)
	if err != nil {
		// Unreachable while topic is validated on every write.
		entry = catalog.MustGet(conic.TopicHome)
	}
	s.seq++
	s.state = StateSending
	s.transcript = append(s.transcript, Message{Role: RoleUser, Text: text})

	turn := Turn{Seq: s.seq, Question: text, Prompt: ComposePrompt(entry, text)}
	s.log.Debug("tutor turn started", "topic", s.topic.String(), "seq", turn.Seq, "prompt", turn.Prompt)
	return turn, true
}

// Send runs the generator for a turn, bounded by the session timeout.
// It does not touch session state.
func (s *Session) Send(ctx context.Context, turn Turn) (string, error) {
	if s.gen == nil {
		return "", fmt.Errorf("%w: no generator configured", ErrServiceCall)
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.gen.Generate(ctx, turn.Prompt)
}

// Complete records the outcome of a turn and returns the session to idle.
// It returns false if turn is not the one in flight.
func (s *Session) Complete(turn Turn, reply string, err error) (Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateSending || turn.Seq != s.seq {
		return Message{}, false
	}

	var msg Message
	switch err = Classify(err); {
	case err != nil:
		level := s.log.Warn
		if errors.Is(err, ErrMissingCredential) {
			level = s.log.Info
		}
		level("tutor turn failed", "seq", turn.Seq, "error", err.Error())
		msg = Message{Role: RoleAssistant, Text: ErrorReply, IsError: true}
	case strings.TrimSpace(reply) == "":
		s.log.Debug("tutor reply empty", "seq", turn.Seq)
		msg = Message{Role: RoleAssistant, Text: FallbackReply}
	default:
		s.log.Debug("tutor reply", "seq", turn.Seq, "reply", reply)
		msg = Message{Role: RoleAssistant, Text: reply}
	}

	s.transcript = append(s.transcript, msg)
	s.state = StateIdle
	return msg, true
}

// Submit runs a whole turn inline and returns the assistant message.
func (s *Session) Submit(ctx context.Context, text string) (Message, bool) {
	turn, ok := s.Begin(text)
	if !ok {
		return Message{}, false
	}
	reply, err := s.Send(ctx, turn)
	return s.Complete(turn, reply, err)
}
