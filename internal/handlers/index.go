package handlers

import (
	"net/http"

	"winey/internal/analytics"
	"winey/internal/archive"
	"winey/internal/config"
	"winey/internal/game"
	"winey/internal/store"
)

// Context holds shared application dependencies
type Context struct {
	GameStore *store.GameStore
	Archive   *archive.Store
	Analytics *analytics.Service
	Security  *game.Security
	Config    config.Config
}

// HandleIndex serves the setup options the create form is built from.
func (ctx *Context) HandleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"playerOptions": game.PlayerOptions(),
		"setups":        game.WineySetups,
	})
}
