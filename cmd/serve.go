package cmd

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/chordprog/constants"
	"github.com/jsphweid/chordprog/mode"
	"github.com/jsphweid/chordprog/model"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

const requestIDHeader = "X-Request-Id"

var serveAddr string

func init() {
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", "", "listen address (defaults to $CHORDPROG_ADDR or :8080)")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the resolver over HTTP",
	Long:  `Serves POST /resolve, GET /scale and GET /modes as JSON.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := serveAddr
		if addr == "" {
			addr = constants.GetListenAddr()
		}
		slog.Info("listening", "addr", addr)
		return http.ListenAndServe(addr, NewHandler())
	},
}

// NewHandler wires the routes behind CORS, request ids and logging.
func NewHandler() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.Use(requestID, logRequests)
	router.HandleFunc("/resolve", HandleResolve).Methods(http.MethodPost)
	router.HandleFunc("/scale", HandleScale).Methods(http.MethodGet)
	router.HandleFunc("/modes", HandleModes).Methods(http.MethodGet)

	c := cors.New(cors.Options{
		AllowedOrigins: constants.GetAllowedOrigins(),
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		ExposedHeaders: []string{requestIDHeader},
	})
	return c.Handler(router)
}

func HandleResolve(w http.ResponseWriter, r *http.Request) {
	var input model.ResolveRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, r, "Could not unmarshal request body: "+err.Error())
		return
	}
	if input.Key == "" {
		input.Key = constants.DefaultKey
	}
	if input.Mode == "" {
		input.Mode = constants.DefaultMode
	}

	res, err := Resolve(input)
	if err != nil {
		writeError(w, r, err.Error())
		return
	}
	writeJSON(w, r, res)
}

func HandleScale(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		key = constants.DefaultKey
	}
	m := r.URL.Query().Get("mode")
	if m == "" {
		m = constants.DefaultMode
	}

	res, err := Scale(key, m)
	if err != nil {
		writeError(w, r, err.Error())
		return
	}
	writeJSON(w, r, res)
}

func HandleModes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, model.ModesResponse{Modes: mode.Names()})
}

func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("could not encode response", "path", r.URL.Path, "err", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, detail string) {
	slog.Debug("bad request", "path", r.URL.Path, "detail", detail)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: detail})
}

func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		slog.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"id", w.Header().Get(requestIDHeader),
			"duration", time.Since(start),
		)
	})
}
