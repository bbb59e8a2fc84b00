package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajepson/stavekit/model"
	"github.com/ajepson/stavekit/pipeline"
)

var (
	servePipeline *pipeline.Pipeline
	serveLogger   *zap.Logger
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the pipeline over HTTP",
	Long:  `Serves the pipeline over HTTP`,
	Run: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(LoadServeFiles())
		serve()
	},
}

// LoadServeFiles builds the pipeline used by the HTTP handlers. It is
// exported so the e2e tests can call the handlers directly.
func LoadServeFiles() error {
	pl, logger, err := newPipeline()
	if err != nil {
		return err
	}
	servePipeline = pl
	serveLogger = logger
	return nil
}

func writeResult(w http.ResponseWriter, res pipeline.Result) {
	resp := model.StageResponse{OK: res.OK, Kind: string(res.Kind), Detail: res.Detail}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func writeBadRequest(w http.ResponseWriter, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: detail})
}

func HandleUpdate(w http.ResponseWriter, r *http.Request) {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		writeBadRequest(w, "could not read request body")
		return
	}

	var input model.UpdateRequestBody
	if err := json.Unmarshal(reqBody, &input); err != nil || input.Path == "" {
		writeBadRequest(w, "body must be JSON with 'path' and 'notes'")
		return
	}

	writeResult(w, servePipeline.Update(input.Path, input.Notes))
}

func HandleSummary(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		writeBadRequest(w, "missing 'path' query parameter")
		return
	}

	writeResult(w, servePipeline.Summary(path))
}

func HandleProcess(w http.ResponseWriter, r *http.Request) {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		writeBadRequest(w, "could not read request body")
		return
	}

	var input model.ProcessRequestBody
	if err := json.Unmarshal(reqBody, &input); err != nil || input.Path == "" {
		writeBadRequest(w, "body must be JSON with 'path'")
		return
	}

	writeResult(w, servePipeline.Process(input.Path))
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/update", HandleUpdate).Methods("POST")
	router.HandleFunc("/summary", HandleSummary).Methods("GET")
	router.HandleFunc("/process", HandleProcess).Methods("POST")

	handler := cors.Default().Handler(router)

	addr := servePipeline.ListenAddr()
	serveLogger.Info("listening", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, handler); err != nil {
		fmt.Printf("server stopped: %v\n", err)
	}
}
