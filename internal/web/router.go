package web

import (
	"database/sql"
	"net/http"

	webembed "github.com/jlhu/perdiem/web"
)

// NewRouter creates the web page router with all page routes registered.
func NewRouter(db *sql.DB) (http.Handler, error) {
	templates, err := LoadTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{DB: db, Templates: templates}

	mux := http.NewServeMux()

	// Static assets.
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(webembed.StaticFS()))))

	mux.HandleFunc("GET /{$}", s.Dashboard)

	mux.HandleFunc("GET /items/new", s.ItemNewPage)
	mux.HandleFunc("POST /items", s.ItemCreateSubmit)
	mux.HandleFunc("GET /items/{id}", s.ItemDetailPage)
	mux.HandleFunc("GET /items/{id}/edit", s.ItemEditPage)
	mux.HandleFunc("POST /items/{id}", s.ItemUpdateSubmit)
	mux.HandleFunc("POST /items/{id}/delete", s.ItemDeleteSubmit)
	mux.HandleFunc("POST /items/{id}/image", s.ItemImageSubmit)
	mux.HandleFunc("GET /items/{id}/image", s.ItemImageGet)

	mux.HandleFunc("POST /prefs", s.PrefsSubmit)

	return mux, nil
}
