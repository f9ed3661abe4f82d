package internal

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/dgraph-io/badger/v4"
)

const inspectTemplate = `<!DOCTYPE html>
<html><head><meta charset="utf-8"><title>Inspect {{.Prefix}}</title></head>
<body>
<form method="get"><input name="prefix" value="{{.Prefix}}"><button>Scan</button></form>
<table border="1" cellpadding="4">
<tr><th>Key</th><th>Type</th><th>Detail</th></tr>
{{range .Items}}<tr><td>{{.Key}}</td><td>{{.Type}}</td><td>{{.Detail}}</td></tr>
{{else}}<tr><td colspan="3">no keys</td></tr>
{{end}}</table>
</body></html>`

var inspectPage = template.Must(template.New("inspect").Parse(inspectTemplate))

type InspectRow struct {
	Key    string
	Type   string
	Detail string
}

type RowMapper func(key string, val []byte) InspectRow

type PageData struct {
	Prefix string
	Items  []InspectRow
}

// NewDebugHandler renders every key of db under the "prefix" query parameter,
// defaultPrefix when it is absent.
func NewDebugHandler(db *badger.DB, mapper RowMapper, defaultPrefix string) http.Handler {
	if mapper == nil {
		mapper = DefaultMapper
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		prefix := r.URL.Query().Get("prefix")
		if prefix == "" {
			prefix = defaultPrefix
		}
		data := PageData{Prefix: prefix}

		err := db.View(func(txn *badger.Txn) error {
			it := txn.NewIterator(badger.DefaultIteratorOptions)
			defer it.Close()
			for it.Seek([]byte(prefix)); it.ValidForPrefix([]byte(prefix)); it.Next() {
				item := it.Item()
				if err := item.Value(func(val []byte) error {
					data.Items = append(data.Items, mapper(string(item.Key()), val))
					return nil
				}); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = inspectPage.Execute(w, data)
	})
}

// StartDebugServer serves handler on localhost:port/endpoint until ctx is canceled.
func StartDebugServer(ctx context.Context, port int, endpoint string, handler http.Handler, log *slog.Logger) {
	mux := http.NewServeMux()
	mux.Handle(endpoint, handler)
	server := &http.Server{
		Addr:              fmt.Sprintf("localhost:%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Warn("Debug server stopped", "addr", server.Addr, "error", err)
		}
	}()
}

func DefaultMapper(key string, val []byte) InspectRow {
	return InspectRow{
		Key:    key,
		Type:   "RAW",
		Detail: "Size: " + strconv.Itoa(len(val)) + " bytes",
	}
}
