// internal/app/features/profile/handler.go

// Package profile serves the site owner's singleton profile. The
// document is reconciled to canonical values at startup, so reads here
// never write.
package profile

import (
	"context"
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	profilestore "github.com/hodayakashh/studyhub/internal/app/store/profiles"
	"github.com/hodayakashh/studyhub/internal/app/system/httpjson"
	"github.com/hodayakashh/studyhub/internal/app/system/timeouts"
)

// Handler owns the profile read endpoint.
type Handler struct {
	Profiles *profilestore.Store
	Log      *zap.Logger
}

// NewHandler constructs a Handler bound to the profile store and logger.
func NewHandler(profiles *profilestore.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Profiles: profiles,
		Log:      logger,
	}
}

// ServeProfile handles GET /api/profile.
func (h *Handler) ServeProfile(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	p, err := h.Profiles.Get(ctx)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.Error(w, http.StatusNotFound, "profile not found")
			return
		}
		h.Log.Error("load profile failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to load profile")
		return
	}
	httpjson.Write(w, http.StatusOK, p)
}
