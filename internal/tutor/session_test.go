package tutor_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/yarayan327-hash/math-test-KSA-material/internal/catalog"
	"github.com/yarayan327-hash/math-test-KSA-material/internal/conic"
	"github.com/yarayan327-hash/math-test-KSA-material/internal/tutor"
)

type fakeGenerator struct {
	mu      sync.Mutex
	reply   string
	err     error
	prompts []string
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, prompt)
	return f.reply, f.err
}

func (f *fakeGenerator) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.prompts)
}

var _ = Describe("Session", func() {
	var (
		gen     *fakeGenerator
		session *tutor.Session
		ctx     context.Context
	)

	BeforeEach(func() {
		gen = &fakeGenerator{reply: "T"}
		session = tutor.NewSession(gen)
		ctx = context.Background()
	})

	It("starts idle with the greeting", func() {
		Expect(session.State()).To(Equal(tutor.StateIdle))
		Expect(session.Transcript()).To(Equal([]tutor.Message{
			{Role: tutor.RoleAssistant, Text: tutor.Greeting},
		}))
		Expect(session.ID()).NotTo(BeEmpty())
	})

	DescribeTable("ignores blank input",
		func(text string) {
			_, ok := session.Submit(ctx, text)
			Expect(ok).To(BeFalse())
			Expect(session.Transcript()).To(HaveLen(1))
			Expect(session.State()).To(Equal(tutor.StateIdle))
			Expect(gen.calls()).To(BeZero())
		},
		Entry("empty", ""),
		Entry("spaces", "   "),
		Entry("newlines and tabs", "\n\t "),
	)

	It("appends exactly the reply on success", func() {
		msg, ok := session.Submit(ctx, "什么是离心率?")
		Expect(ok).To(BeTrue())
		Expect(msg).To(Equal(tutor.Message{Role: tutor.RoleAssistant, Text: "T"}))

		transcript := session.Transcript()
		Expect(transcript).To(HaveLen(3))
		Expect(transcript[1]).To(Equal(tutor.Message{Role: tutor.RoleUser, Text: "什么是离心率?"}))
		Expect(transcript[2].Text).To(Equal("T"))
		Expect(session.State()).To(Equal(tutor.StateIdle))
	})

	It("substitutes the fallback for an empty reply", func() {
		gen.reply = "  "
		msg, _ := session.Submit(ctx, "出题")
		Expect(msg.Text).To(Equal(tutor.FallbackReply))
		Expect(msg.IsError).To(BeFalse())
	})

	It("turns a service failure into one error message", func() {
		gen.err = errors.New("connection reset")
		msg, ok := session.Submit(ctx, "hello")
		Expect(ok).To(BeTrue())
		Expect(msg).To(Equal(tutor.Message{Role: tutor.RoleAssistant, Text: tutor.ErrorReply, IsError: true}))
		Expect(session.Transcript()).To(HaveLen(3))
		Expect(session.State()).To(Equal(tutor.StateIdle))
	})

	It("treats a missing credential like any other failure", func() {
		gen.err = fmt.Errorf("gemini: %w", tutor.ErrMissingCredential)
		msg, _ := session.Submit(ctx, "hello")
		Expect(msg.IsError).To(BeTrue())

		gen.err = nil
		msg, _ = session.Submit(ctx, "retry")
		Expect(msg.IsError).To(BeFalse())
		Expect(session.Transcript()).To(HaveLen(5))
	})

	Context("while a turn is in flight", func() {
		var turn tutor.Turn

		BeforeEach(func() {
			var ok bool
			turn, ok = session.Begin("first")
			Expect(ok).To(BeTrue())
		})

		It("rejects another question", func() {
			Expect(session.State()).To(Equal(tutor.StateSending))
			_, ok := session.Begin("second")
			Expect(ok).To(BeFalse())
			_, ok = session.Submit(ctx, "third")
			Expect(ok).To(BeFalse())
			Expect(session.Transcript()).To(HaveLen(2))
		})

		It("ignores a stale completion", func() {
			_, ok := session.Complete(tutor.Turn{Seq: turn.Seq - 1}, "late", nil)
			Expect(ok).To(BeFalse())
			Expect(session.State()).To(Equal(tutor.StateSending))

			_, ok = session.Complete(turn, "on time", nil)
			Expect(ok).To(BeTrue())
			_, ok = session.Complete(turn, "twice", nil)
			Expect(ok).To(BeFalse())
			Expect(session.Transcript()).To(HaveLen(3))
		})
	})

	Describe("prompt composition", func() {
		It("uses the current topic's chapter and key points", func() {
			Expect(session.SetTopic(conic.TopicEllipse)).To(Succeed())
			session.Submit(ctx, "焦点在哪里?")

			Expect(gen.prompts).To(HaveLen(1))
			prompt := gen.prompts[0]
			Expect(prompt).To(ContainSubstring("当前的章节是：椭圆 (Ellipse)。"))
			Expect(prompt).To(ContainSubstring("焦点三角形(几何性质,余弦定理应用,典型三点构形)"))
			Expect(prompt).To(HaveSuffix("\n\n用户的问题是: 焦点在哪里?"))
		})

		It("sends only the current question", func() {
			session.Submit(ctx, "first question")
			session.Submit(ctx, "second question")
			Expect(gen.prompts[1]).NotTo(ContainSubstring("first question"))
		})

		It("lists five numbered rules", func() {
			instr := tutor.SystemInstruction(catalog.MustGet(conic.TopicParabola))
			Expect(instr).To(ContainSubstring("5. 使用LaTeX格式"))
			Expect(strings.Count(instr, "\n")).To(BeNumerically(">=", 8))
		})

		It("rejects topics outside the enumeration", func() {
			Expect(session.SetTopic(conic.Topic(-2))).To(MatchError(conic.ErrUnknownTopic))
			Expect(session.Topic()).To(Equal(conic.TopicHome))
		})
	})

	Describe("timeouts", func() {
		It("fails a call that outlives the session timeout", func() {
			slow := tutor.GeneratorFunc(func(ctx context.Context, _ string) (string, error) {
				<-ctx.Done()
				return "", ctx.Err()
			})
			s := tutor.NewSession(slow, tutor.WithTimeout(20*time.Millisecond))

			msg, ok := s.Submit(ctx, "hung")
			Expect(ok).To(BeTrue())
			Expect(msg.IsError).To(BeTrue())
			Expect(s.State()).To(Equal(tutor.StateIdle))
		})
	})

	It("returns a copy of the transcript", func() {
		t := session.Transcript()
		t[0].Text = "mutated"
		Expect(session.Transcript()[0].Text).To(Equal(tutor.Greeting))
	})
})

var _ = Describe("Classify", func() {
	It("maps errors onto the two failure kinds", func() {
		Expect(tutor.Classify(nil)).To(BeNil())
		Expect(tutor.Classify(errors.New("boom"))).To(MatchError(tutor.ErrServiceCall))
		Expect(tutor.Classify(context.DeadlineExceeded)).To(MatchError(tutor.ErrServiceCall))
		Expect(tutor.Classify(fmt.Errorf("x: %w", tutor.ErrMissingCredential))).To(MatchError(tutor.ErrMissingCredential))
	})
})
