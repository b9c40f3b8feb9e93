package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/lymphiz/internal/achievements"
	"github.com/abhisek/lymphiz/internal/drainage"
	"github.com/abhisek/lymphiz/internal/metrics"
	"github.com/abhisek/lymphiz/internal/quiz"
	"github.com/abhisek/lymphiz/internal/session"
)

type testServer struct {
	*Server
	manager *session.Manager
}

func newTestServer(t *testing.T, opts Options) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ds, err := drainage.Default()
	require.NoError(t, err)
	collector := metrics.NewCollector(nil)
	manager := session.NewManager(quiz.NewEngine(ds, quiz.DefaultConfig()), session.ManagerConfig{
		Seed:     1,
		Recorder: collector,
	})
	return &testServer{Server: New(opts, ds, manager, collector, nil), manager: manager}
}

func (ts *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	ts.Handler().ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func (ts *testServer) createSession(t *testing.T) string {
	t.Helper()
	w := ts.do(t, http.MethodPost, "/api/sessions", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	return decode[sessionView](t, w).ID
}

func TestOrgans(t *testing.T) {
	ts := newTestServer(t, Options{})

	w := ts.do(t, http.MethodGet, "/api/organs", nil)
	require.Equal(t, http.StatusOK, w.Code)
	organs := decode[[]organSummary](t, w)
	require.Len(t, organs, 7)
	assert.Equal(t, "estomago", organs[0].Key)
	assert.Equal(t, 4, organs[0].Routes)

	w = ts.do(t, http.MethodGet, "/api/organs/rins", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Drenagem Renal")

	w = ts.do(t, http.MethodGet, "/api/organs/coracao", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestQuestionRoundTrip(t *testing.T) {
	ts := newTestServer(t, Options{})
	id := ts.createSession(t)

	w := ts.do(t, http.MethodPost, "/api/sessions/"+id+"/answer", answerRequest{Answer: ptr("x")})
	assert.Equal(t, http.StatusConflict, w.Code, "answer before question")

	w = ts.do(t, http.MethodPost, "/api/sessions/"+id+"/questions", questionRequest{Mode: "next-step"})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.NotContains(t, w.Body.String(), `"answer"`, "correct answer must not leak")
	q := decode[quiz.Question](t, w)
	require.Len(t, q.Options, quiz.OptionCount)

	sess, err := ts.manager.Get(id)
	require.NoError(t, err)
	answer := sess.Question().Answer

	w = ts.do(t, http.MethodPost, "/api/sessions/"+id+"/answer", answerRequest{Answer: &answer})
	require.Equal(t, http.StatusOK, w.Code)
	res := decode[session.Result](t, w)
	assert.True(t, res.Correct)
	assert.Equal(t, answer, res.Expected)

	w = ts.do(t, http.MethodPost, "/api/sessions/"+id+"/answer", answerRequest{Answer: &answer})
	assert.Equal(t, http.StatusConflict, w.Code, "double submit")

	w = ts.do(t, http.MethodGet, "/api/sessions/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	view := decode[sessionView](t, w)
	assert.Equal(t, 1, view.Summary.TotalQuestions)
	assert.Equal(t, 1, view.Summary.TotalScore)
}

func ptr[T any](v T) *T { return &v }

func TestAnswer_EmptyStringGradedIncorrect(t *testing.T) {
	ts := newTestServer(t, Options{})
	id := ts.createSession(t)

	w := ts.do(t, http.MethodPost, "/api/sessions/"+id+"/questions", questionRequest{Mode: "next-step"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = ts.do(t, http.MethodPost, "/api/sessions/"+id+"/answer", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code, "missing answer field")

	w = ts.do(t, http.MethodPost, "/api/sessions/"+id+"/answer", answerRequest{Answer: ptr("")})
	require.Equal(t, http.StatusOK, w.Code)
	res := decode[session.Result](t, w)
	assert.False(t, res.Correct)

	sess, err := ts.manager.Get(id)
	require.NoError(t, err)
	assert.Equal(t, 1, sess.State().TotalQuestions)
}

func TestSequenceRoundTrip(t *testing.T) {
	ts := newTestServer(t, Options{})
	id := ts.createSession(t)

	w := ts.do(t, http.MethodPost, "/api/sessions/"+id+"/sequence", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	g := decode[quiz.SequenceGame](t, w)
	require.Greater(t, len(g.Shuffled), 1)

	w = ts.do(t, http.MethodPost, "/api/sessions/"+id+"/sequence/answer", sequenceAnswerRequest{Positions: []int{1}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Keep the shown order, which is never the correct one.
	positions := make([]int, len(g.Shuffled))
	for i := range positions {
		positions[i] = i + 1
	}
	w = ts.do(t, http.MethodPost, "/api/sessions/"+id+"/sequence/answer", sequenceAnswerRequest{Positions: positions})
	require.Equal(t, http.StatusOK, w.Code)
	res := decode[session.Result](t, w)
	assert.False(t, res.Correct)
	assert.Equal(t, g.Shuffled, res.User)
	assert.NotEqual(t, res.Sequence, res.User)
}

func TestResetAndDelete(t *testing.T) {
	ts := newTestServer(t, Options{})
	id := ts.createSession(t)

	sess, err := ts.manager.Get(id)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		q, err := sess.NewQuestion(quiz.ModeClinicalCase)
		require.NoError(t, err)
		_, err = sess.Answer(q.Answer)
		require.NoError(t, err)
	}
	require.True(t, sess.State().Achievements.Has(achievements.Accuracy100))

	w := ts.do(t, http.MethodPost, "/api/sessions/"+id+"/reset", nil)
	require.Equal(t, http.StatusOK, w.Code)
	view := decode[sessionView](t, w)
	assert.Zero(t, view.Summary.TotalQuestions)
	assert.Empty(t, view.Summary.Achievements)

	w = ts.do(t, http.MethodDelete, "/api/sessions/"+id, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = ts.do(t, http.MethodGet, "/api/sessions/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBadRequests(t *testing.T) {
	ts := newTestServer(t, Options{})
	id := ts.createSession(t)

	w := ts.do(t, http.MethodPost, "/api/sessions/"+id+"/questions", questionRequest{Mode: "sequence"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = ts.do(t, http.MethodPost, "/api/sessions/"+id+"/questions", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = ts.do(t, http.MethodPost, "/api/sessions/missing/questions", questionRequest{Mode: "next-step"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRateLimit(t *testing.T) {
	ts := newTestServer(t, Options{RateLimit: 1, RateBurst: 2})

	codes := make([]int, 3)
	for i := range codes {
		codes[i] = ts.do(t, http.MethodGet, "/api/organs", nil).Code
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	// Health and metrics are outside the limited group.
	assert.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, "/healthz", nil).Code)
	assert.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, "/metrics", nil).Code)
}

func TestCORS(t *testing.T) {
	ts := newTestServer(t, Options{CORSOrigins: []string{"http://localhost:3000"}})

	req := httptest.NewRequest(http.MethodGet, "/api/organs", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	ts.Handler().ServeHTTP(w, req)

	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{session.ErrNotFound, http.StatusNotFound},
		{&session.InvalidStateError{Op: "x", Reason: "y"}, http.StatusConflict},
		{quiz.ErrAlreadySubmitted, http.StatusConflict},
		{quiz.ErrInvalidPositions, http.StatusBadRequest},
		{&quiz.InsufficientPoolError{Need: 3, Available: 1}, http.StatusUnprocessableEntity},
		{&quiz.GenerationError{Mode: quiz.ModeSequence}, http.StatusUnprocessableEntity},
		{assert.AnError, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := statusFor(tt.err); got != tt.want {
			t.Errorf("statusFor(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
