package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"

	"github.com/gorilla/mux"
	"github.com/spf13/cobra"

	"clocktree-go/drivers/sf32lb52/rcc"
	"clocktree-go/errcode"
	"clocktree-go/services/clock"
)

func newServeCmd(o *options) *cobra.Command {
	var listen string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a read-only JSON view of the clock tree over HTTP.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("listen") {
				listen = envOr(envListen, listen)
			}
			return o.withSession(cmd, func(s *session) error {
				ln, err := net.Listen("tcp", listen)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Serving clocks on http://%s/api/clocks\n", ln.Addr())

				ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
				defer stop()
				return serveAPI(ctx, ln, newAPI(s).router())
			})
		},
	}
	cmd.Flags().StringVar(&listen, "listen", "127.0.0.1:8032", "listen address (env "+envListen+")")
	return cmd
}

func serveAPI(ctx context.Context, ln net.Listener, h http.Handler) error {
	srv := &http.Server{Handler: h}
	go func() {
		<-ctx.Done()
		srv.Close()
	}()
	err := srv.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

type api struct {
	ctl *rcc.Controller
	svc *clock.Service
}

func newAPI(s *session) *api {
	return &api{ctl: s.ctl, svc: clock.New(s.ctl, s.hw)}
}

func (a *api) router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/clocks", a.clocks).Methods(http.MethodGet)
	r.HandleFunc("/api/clock/{node}", a.node).Methods(http.MethodGet)
	r.HandleFunc("/api/mode", a.mode).Methods(http.MethodGet)
	r.HandleFunc("/api/dump", a.dump).Methods(http.MethodGet)
	r.HandleFunc("/api/periph/{name}", a.periph).Methods(http.MethodGet)
	return r
}

type nodeRsp struct {
	Node string `json:"node"`
	Hz   uint32 `json:"hz"`
	Text string `json:"text"`
}

type modeRsp struct {
	Mode string `json:"mode"`
	Rail string `json:"rail"`
}

type periphRsp struct {
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}

func (a *api) clocks(w http.ResponseWriter, _ *http.Request) {
	st, err := a.svc.Snapshot()
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, st)
}

func (a *api) node(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["node"]
	n, ok := rcc.ParseNode(name)
	if !ok {
		writeErr(w, http.StatusNotFound, rcc.ErrUnknownNode)
		return
	}
	f, err := a.ctl.Freq(n)
	if err != nil {
		writeErr(w, http.StatusUnprocessableEntity, err)
		return
	}
	writeJSON(w, nodeRsp{Node: n.String(), Hz: uint32(f), Text: rcc.FormatMHz(f)})
}

func (a *api) mode(w http.ResponseWriter, _ *http.Request) {
	st, err := a.svc.Snapshot()
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err)
		return
	}
	if st.Mode == "" {
		writeErr(w, http.StatusUnprocessableEntity, errcode.OutOfRange)
		return
	}
	writeJSON(w, modeRsp{Mode: st.Mode, Rail: st.Rail})
}

func (a *api) dump(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if err := a.ctl.Dump(w); err != nil {
		writeErr(w, http.StatusInternalServerError, err)
	}
}

func (a *api) periph(w http.ResponseWriter, r *http.Request) {
	p, ok := rcc.LookupPeripheral(mux.Vars(r)["name"])
	if !ok {
		writeErr(w, http.StatusNotFound, errcode.UnknownPeriph)
		return
	}
	on, err := a.ctl.Enabled(p)
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, periphRsp{Name: p.Name, Enabled: on})
}

func writeJSON(w http.ResponseWriter, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(b)
}

func writeErr(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	b, _ := json.Marshal(struct {
		Code  string `json:"code"`
		Error string `json:"error"`
	}{string(errcode.Of(err)), err.Error()})
	w.Write(b)
}
