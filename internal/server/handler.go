package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/sirupsen/logrus"

	"github.com/Decentr-net/seeker/internal/entities"
	"github.com/Decentr-net/seeker/internal/feed"
	"github.com/Decentr-net/seeker/internal/seed"
)

var log = logrus.WithField("layer", "server")

var errInvalidRequest = errors.New("invalid request")

func (s server) getSnapshot(w http.ResponseWriter, r *http.Request) {
	writeOK(w, http.StatusOK, toAPISnapshot(s.s.Snapshot()))
}

func (s server) createPost(w http.ResponseWriter, r *http.Request) {
	var req TextRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.dispatch(w, r, feed.CreatePost{Text: req.Text})
}

func (s server) toggleLike(w http.ResponseWriter, r *http.Request) {
	s.dispatch(w, r, feed.ToggleLike{PostID: chi.URLParam(r, "id")})
}

func (s server) addComment(w http.ResponseWriter, r *http.Request) {
	var req TextRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.dispatch(w, r, feed.AddComment{PostID: chi.URLParam(r, "id"), Text: req.Text})
}

func (s server) sendMessage(w http.ResponseWriter, r *http.Request) {
	var req TextRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.dispatch(w, r, feed.SendMessage{ChatID: chi.URLParam(r, "id"), Text: req.Text})
}

func (s server) updateProfile(w http.ResponseWriter, r *http.Request) {
	var req UpdateProfileRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.dispatch(w, r, feed.UpdateProfile{Name: req.Name, Bio: req.Bio})
}

func (s server) toggleMembership(w http.ResponseWriter, r *http.Request) {
	s.dispatch(w, r, feed.ToggleCommunityMembership{CommunityID: chi.URLParam(r, "id")})
}

func (s server) toggleWallet(w http.ResponseWriter, r *http.Request) {
	s.dispatch(w, r, feed.ToggleWallet{})
}

func (s server) navigate(w http.ResponseWriter, r *http.Request) {
	var req NavigateRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	v, err := feed.ParseView(req.View)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.dispatch(w, r, feed.Navigate{View: v})
}

func (s server) openThread(w http.ResponseWriter, r *http.Request) {
	s.dispatch(w, r, feed.OpenThread{PostID: chi.URLParam(r, "id")})
}

func (s server) closeThread(w http.ResponseWriter, r *http.Request) {
	s.dispatch(w, r, feed.CloseThread{})
}

func (s server) openChat(w http.ResponseWriter, r *http.Request) {
	s.dispatch(w, r, feed.OpenChat{ChatID: chi.URLParam(r, "id")})
}

func (s server) closeChat(w http.ResponseWriter, r *http.Request) {
	s.dispatch(w, r, feed.CloseChat{})
}

func (s server) openOverlay(w http.ResponseWriter, r *http.Request) {
	o, err := feed.ParseOverlay(chi.URLParam(r, "overlay"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.dispatch(w, r, feed.OpenOverlay{Overlay: o})
}

func (s server) closeOverlay(w http.ResponseWriter, r *http.Request) {
	o, err := feed.ParseOverlay(chi.URLParam(r, "overlay"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.dispatch(w, r, feed.CloseOverlay{Overlay: o})
}

func (s server) requestSummary(w http.ResponseWriter, r *http.Request) {
	done := s.s.RequestTrendingSummary(r.Context())

	select {
	case <-done:
		writeOK(w, http.StatusOK, toAPISnapshot(s.s.Snapshot()))
	default:
		writeOK(w, http.StatusAccepted, toAPISnapshot(s.s.Snapshot()))
	}
}

func (s server) getTrending(w http.ResponseWriter, r *http.Request) {
	trends := seed.Trends()

	out := make([]Trend, len(trends))
	for i, v := range trends {
		out[i] = Trend{Tag: v.Tag, Posts: v.Posts, Category: v.Category}
	}

	writeOK(w, http.StatusOK, out)
}

func (s server) getStories(w http.ResponseWriter, r *http.Request) {
	stories := seed.Stories()

	out := make([]Story, len(stories))
	for i, v := range stories {
		out[i] = toAPIStory(v)
	}

	writeOK(w, http.StatusOK, out)
}

func (s server) dispatch(w http.ResponseWriter, r *http.Request, i feed.Intent) {
	snap, err := s.s.Dispatch(r.Context(), i)
	switch {
	case err == nil:
		writeOK(w, http.StatusOK, toAPISnapshot(snap))
	case errors.Is(err, feed.ErrValidation):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, feed.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		writeInternalErrorf(r.Context(), w, "failed to dispatch %s: %s", i.Op(), err.Error())
	}
}

func toAPIStory(v entities.Story) Story {
	return Story{ID: v.ID, Name: v.Name, Avatar: v.Avatar, Active: v.Active}
}

func decode(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %s", errInvalidRequest, err.Error())
	}
	return nil
}

func writeOK(w http.ResponseWriter, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		log.WithError(err).Error("failed to marshal response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeOK(w, status, Error{Error: message})
}

func writeInternalErrorf(ctx context.Context, w http.ResponseWriter, format string, args ...interface{}) {
	log.WithContext(ctx).Errorf(format, args...)
	writeError(w, http.StatusInternalServerError, "internal error")
}
