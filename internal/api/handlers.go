package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/lymphiz/internal/drainage"
	"github.com/abhisek/lymphiz/internal/quiz"
	"github.com/abhisek/lymphiz/internal/session"
)

type errorBody struct {
	Error string `json:"error"`
}

type organSummary struct {
	Key      string `json:"key"`
	Name     string `json:"name"`
	Routes   int    `json:"routes"`
	Clinical bool   `json:"clinical"`
}

type sessionView struct {
	ID        string           `json:"id"`
	CreatedAt time.Time        `json:"createdAt"`
	Summary   *session.Summary `json:"summary"`
}

type questionRequest struct {
	Mode string `json:"mode" binding:"required"`
}

// A nil Answer means the field was absent. An empty one is graded.
type answerRequest struct {
	Answer *string `json:"answer" binding:"required"`
}

type sequenceAnswerRequest struct {
	Positions []int `json:"positions" binding:"required"`
}

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	var stateErr *session.InvalidStateError
	var poolErr *quiz.InsufficientPoolError
	switch {
	case errors.Is(err, session.ErrNotFound):
		return http.StatusNotFound
	case errors.As(err, &stateErr), errors.Is(err, quiz.ErrAlreadySubmitted):
		return http.StatusConflict
	case errors.Is(err, quiz.ErrInvalidPositions):
		return http.StatusBadRequest
	case errors.As(err, &poolErr), errors.Is(err, drainage.ErrInvalidDataset):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(statusFor(err), errorBody{Error: err.Error()})
}

func (s *Server) listOrgans(c *gin.Context) {
	organs := s.dataset.Organs()
	out := make([]organSummary, 0, len(organs))
	for _, o := range organs {
		out = append(out, organSummary{
			Key:      o.Key,
			Name:     o.Name,
			Routes:   len(o.Routes),
			Clinical: o.HasCase(),
		})
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) getOrgan(c *gin.Context) {
	o, ok := s.dataset.Organ(c.Param("key"))
	if !ok {
		c.AbortWithStatusJSON(http.StatusNotFound, errorBody{Error: "organ not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"key":    o.Key,
		"name":   o.Name,
		"routes": o.Routes,
	})
}

func (s *Server) createSession(c *gin.Context) {
	sess := s.sessions.Create()
	c.JSON(http.StatusCreated, sessionView{
		ID:        sess.ID,
		CreatedAt: sess.CreatedAt,
		Summary:   sess.Summary(),
	})
}

func (s *Server) getSession(c *gin.Context) {
	var view sessionView
	err := s.sessions.Do(c.Param("id"), func(sess *session.Session) error {
		view = sessionView{ID: sess.ID, CreatedAt: sess.CreatedAt, Summary: sess.Summary()}
		return nil
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (s *Server) deleteSession(c *gin.Context) {
	if !s.sessions.Delete(c.Param("id")) {
		writeError(c, session.ErrNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) newQuestion(c *gin.Context) {
	var req questionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorBody{Error: err.Error()})
		return
	}
	mode, err := quiz.ParseMode(req.Mode)
	if err != nil || mode == quiz.ModeSequence {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorBody{Error: "mode must be next-step or clinical-case"})
		return
	}

	var q *quiz.Question
	err = s.sessions.Do(c.Param("id"), func(sess *session.Session) error {
		var err error
		q, err = sess.NewQuestion(mode)
		return err
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, q)
}

func (s *Server) answer(c *gin.Context) {
	var req answerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorBody{Error: err.Error()})
		return
	}

	var res session.Result
	err := s.sessions.Do(c.Param("id"), func(sess *session.Session) error {
		var err error
		res, err = sess.Answer(*req.Answer)
		return err
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (s *Server) newSequence(c *gin.Context) {
	var g *quiz.SequenceGame
	err := s.sessions.Do(c.Param("id"), func(sess *session.Session) error {
		var err error
		g, err = sess.NewSequence()
		return err
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, g)
}

func (s *Server) answerSequence(c *gin.Context) {
	var req sequenceAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorBody{Error: err.Error()})
		return
	}

	var res session.Result
	err := s.sessions.Do(c.Param("id"), func(sess *session.Session) error {
		var err error
		res, err = sess.AnswerSequence(req.Positions)
		return err
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (s *Server) reset(c *gin.Context) {
	var view sessionView
	err := s.sessions.Do(c.Param("id"), func(sess *session.Session) error {
		sess.Reset()
		view = sessionView{ID: sess.ID, CreatedAt: sess.CreatedAt, Summary: sess.Summary()}
		return nil
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
