package cmd

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/muzze/chord"
	"github.com/jsphweid/muzze/constants"
	"github.com/jsphweid/muzze/model"
	"github.com/jsphweid/muzze/scale"
	"github.com/pkg/errors"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", constants.GetListenAddr(), "address to listen on")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the scale and chord catalogs over http",
	Long:  `Serves the scale and chord catalogs as json and names chords posted to /identify.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log.WithField("addr", serveAddr).Info("Serving")
		return http.ListenAndServe(serveAddr, NewRouter())
	},
}

// NewRouter returns the http api with cors and request logging applied.
func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/scales", handleScales).Methods("GET")
	router.HandleFunc("/scales/{name}", handleScale).Methods("GET")
	router.HandleFunc("/chords", handleChords).Methods("GET")
	router.HandleFunc("/chords/{name}", handleChord).Methods("GET")
	router.HandleFunc("/identify", HandleIdentify).Methods("POST")
	router.Use(logRequests)
	return cors.Default().Handler(router)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.New().String()
		w.Header().Set("X-Request-Id", id)
		start := time.Now()
		next.ServeHTTP(w, r)
		log.WithFields(logrus.Fields{
			"id":      id,
			"method":  r.Method,
			"path":    r.URL.Path,
			"elapsed": time.Since(start),
		}).Debug("Handled request")
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Error("Could not encode response")
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

// rootParam reads the optional ?root= query parameter, which must leave
// room for notes up to top semitones above it.
func rootParam(r *http.Request, top int) (*uint8, error) {
	raw := r.URL.Query().Get("root")
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.ParseUint(raw, 10, 7)
	if err != nil {
		return nil, errors.Wrapf(err, "bad root %q", raw)
	}
	root := uint8(n)
	if err := checkRoot(root, top); err != nil {
		return nil, err
	}
	return &root, nil
}

func handleScales(w http.ResponseWriter, r *http.Request) {
	res := []model.ScaleResponse{}
	for _, name := range scale.Names() {
		sc, _ := scale.ByName(name)
		res = append(res, describeScale(name, sc, nil))
	}
	writeJSON(w, http.StatusOK, res)
}

func handleScale(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	sc, ok := scale.ByName(name)
	if !ok {
		writeError(w, http.StatusNotFound, errors.Errorf("unknown scale %q", name))
		return
	}
	root, err := rootParam(r, scaleTop(sc))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, describeScale(name, sc, root))
}

func handleChords(w http.ResponseWriter, r *http.Request) {
	res := []model.ChordResponse{}
	for _, c := range chord.All() {
		res = append(res, describeChord(c, nil))
	}
	writeJSON(w, http.StatusOK, res)
}

func handleChord(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	c, ok := chord.ByName(name)
	if !ok {
		writeError(w, http.StatusNotFound, errors.Errorf("unknown chord %q", name))
		return
	}
	root, err := rootParam(r, chordTop(c))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, describeChord(c, root))
}

// HandleIdentify names the chord formed by the posted notes.
func HandleIdentify(w http.ResponseWriter, r *http.Request) {
	var input model.IdentifyRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, errors.Wrap(err, "could not decode request body"))
		return
	}
	if len(input.Notes) == 0 {
		writeError(w, http.StatusBadRequest, errors.New("notes can't be empty"))
		return
	}
	notes := make(model.Notes, 0, len(input.Notes))
	for _, n := range input.Notes {
		if n < 0 || n > 127 {
			writeError(w, http.StatusBadRequest, errors.Errorf("note %d is not a midi note", n))
			return
		}
		notes = append(notes, uint8(n))
	}
	writeJSON(w, http.StatusOK, model.IdentifyResponse{Matches: toMatches(chord.Identify(notes))})
}
