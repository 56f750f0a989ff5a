package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yarayan327-hash/math-test-KSA-material/internal/catalog"
	"github.com/yarayan327-hash/math-test-KSA-material/internal/conic"
	"github.com/yarayan327-hash/math-test-KSA-material/internal/control"
	"github.com/yarayan327-hash/math-test-KSA-material/internal/export"
	"github.com/yarayan327-hash/math-test-KSA-material/internal/logger"
	"github.com/yarayan327-hash/math-test-KSA-material/internal/tutor"
	"github.com/yarayan327-hash/math-test-KSA-material/internal/viz"
)

// Handler serves the catalog, the curve lab and tutor sessions.
type Handler struct {
	store    *SessionStore
	defaults conic.Params
	log      *logger.Logger
}

func NewHandler(store *SessionStore, defaults conic.Params, log *logger.Logger) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	return &Handler{store: store, defaults: defaults, log: log}
}

func HealthCheck(c *gin.Context) {
	RespondOK(c, gin.H{"status": "ok"})
}

func (h *Handler) ListTopics(c *gin.Context) {
	RespondOK(c, gin.H{"topics": catalog.All()})
}

func (h *Handler) GetTopic(c *gin.Context) {
	topic, ok := topicParam(c)
	if !ok {
		return
	}
	RespondOK(c, catalog.MustGet(topic))
}

type curveResponse struct {
	export.CurveData
	EccentricityLabel string             `json:"eccentricityLabel,omitempty"`
	Editable          []string           `json:"editable"`
	Values            map[string]float64 `json:"values"`
	Scene             viz.Scene          `json:"scene"`
}

// GetCurve samples a topic. Query values r, a, b and p are clamped into
// their slider ranges like the lab does.
func (h *Handler) GetCurve(c *gin.Context) {
	ctl, ok := h.controller(c)
	if !ok {
		return
	}
	editable := make([]string, 0, 2)
	for _, name := range ctl.Editable() {
		editable = append(editable, string(name))
	}
	RespondOK(c, curveResponse{
		CurveData:         export.NewCurveData(ctl.Curve(), ctl.Params()),
		EccentricityLabel: ctl.EccentricityLabel(),
		Editable:          editable,
		Values:            ctl.GetParams(),
		Scene:             ctl.Scene(),
	})
}

func (h *Handler) GetCurveSVG(c *gin.Context) {
	ctl, ok := h.controller(c)
	if !ok {
		return
	}
	c.Data(http.StatusOK, "image/svg+xml; charset=utf-8", []byte(export.SceneToSVG(ctl.Scene())))
}

func (h *Handler) controller(c *gin.Context) (*control.Controller, bool) {
	topic, ok := topicParam(c)
	if !ok {
		return nil, false
	}
	ctl, err := control.NewLab(topic, h.defaults)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "lab_failed", err)
		return nil, false
	}
	for _, name := range []conic.ParamName{conic.ParamRadius, conic.ParamSemiMajor, conic.ParamSemiMinor, conic.ParamFocalParameter} {
		raw, present := c.GetQuery(string(name))
		if !present {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "invalid_param", fmt.Errorf("%s: %w", name, err))
			return nil, false
		}
		if err := ctl.SetParam(string(name), v); err != nil {
			RespondError(c, http.StatusBadRequest, "invalid_param", err)
			return nil, false
		}
	}
	return ctl, true
}

type sessionView struct {
	ID         string          `json:"id"`
	Topic      conic.Topic     `json:"topic"`
	State      tutor.State     `json:"state"`
	CreatedAt  time.Time       `json:"createdAt"`
	Transcript []tutor.Message `json:"transcript"`
}

func viewOf(s *tutor.Session) sessionView {
	return sessionView{
		ID:         s.ID(),
		Topic:      s.Topic(),
		State:      s.State(),
		CreatedAt:  s.Created(),
		Transcript: s.Transcript(),
	}
}

type createSessionRequest struct {
	Topic conic.Topic `json:"topic"`
}

func (h *Handler) CreateSession(c *gin.Context) {
	var req createSessionRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			RespondError(c, http.StatusBadRequest, "invalid_request", err)
			return
		}
	}
	sess, err := h.store.Create(req.Topic)
	if err != nil {
		RespondError(c, http.StatusServiceUnavailable, "store_full", err)
		return
	}
	h.log.Info("tutor session created", "session_id", sess.ID(), "topic", req.Topic.String())
	c.JSON(http.StatusCreated, viewOf(sess))
}

func (h *Handler) GetSession(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	RespondOK(c, viewOf(sess))
}

type postMessageRequest struct {
	Text  string       `json:"text" binding:"required"`
	Topic *conic.Topic `json:"topic,omitempty"`
}

type postMessageResponse struct {
	Reply   tutor.Message `json:"reply"`
	Session sessionView   `json:"session"`
}

// PostMessage runs one tutor turn inline. Tutor failures are part of the
// reply, not an HTTP error.
func (h *Handler) PostMessage(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	var req postMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		RespondError(c, http.StatusBadRequest, "empty_message", errors.New("message text is blank"))
		return
	}
	if req.Topic != nil {
		if err := sess.SetTopic(*req.Topic); err != nil {
			RespondError(c, http.StatusBadRequest, "unknown_topic", err)
			return
		}
	}

	msg, ok := sess.Submit(c.Request.Context(), req.Text)
	if !ok {
		RespondError(c, http.StatusConflict, "turn_in_flight", errors.New("another message is still being answered"))
		return
	}
	RespondOK(c, postMessageResponse{Reply: msg, Session: viewOf(sess)})
}

func (h *Handler) session(c *gin.Context) (*tutor.Session, bool) {
	sess, err := h.store.Get(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusNotFound, "session_not_found", err)
		return nil, false
	}
	return sess, true
}

func topicParam(c *gin.Context) (conic.Topic, bool) {
	topic, err := conic.ParseTopic(c.Param("topic"))
	if err != nil {
		RespondError(c, http.StatusNotFound, "unknown_topic", err)
		return 0, false
	}
	return topic, true
}
