package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// fakeStore is an in-memory stand-in for the remote data store's REST
// interface: equality filters, descending ordering, insert/patch/delete with
// returned representations. Handler tests run the full stack against it.
type fakeStore struct {
	mu     sync.Mutex
	tables map[string][]map[string]any
	nextID int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		tables: map[string][]map[string]any{
			"employees":  {},
			"attendance": {},
		},
		nextID: 1,
	}
}

func (s *fakeStore) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		table := strings.TrimPrefix(r.URL.Path, "/")
		s.mu.Lock()
		defer s.mu.Unlock()

		rows, ok := s.tables[table]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprintf(w, `{"message":"relation %q does not exist"}`, table)
			return
		}

		filters := map[string]string{}
		orderColumn := ""
		for key, values := range r.URL.Query() {
			if key == "order" {
				orderColumn = strings.TrimSuffix(values[0], ".desc")
				continue
			}
			filters[key] = strings.TrimPrefix(values[0], "eq.")
		}

		matches := func(row map[string]any) bool {
			for column, want := range filters {
				if fmt.Sprint(row[column]) != want {
					return false
				}
			}
			return true
		}

		switch r.Method {
		case http.MethodGet:
			var result []map[string]any
			for _, row := range rows {
				if matches(row) {
					result = append(result, row)
				}
			}
			if orderColumn != "" {
				sort.SliceStable(result, func(i, j int) bool {
					return fmt.Sprint(result[i][orderColumn]) > fmt.Sprint(result[j][orderColumn])
				})
			}
			if result == nil {
				result = []map[string]any{}
			}
			writeStoreJSON(w, http.StatusOK, result)

		case http.MethodPost:
			var row map[string]any
			if err := json.NewDecoder(r.Body).Decode(&row); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				fmt.Fprintf(w, `{"message":%q}`, err.Error())
				return
			}
			if table == "employees" {
				row["id"] = uuid.NewString()
			} else {
				row["id"] = s.nextID
				s.nextID++
			}
			// Fixed-width timestamp so lexicographic ordering matches time order.
			row["created_at"] = time.Now().UTC().Format("2006-01-02T15:04:05.000000000Z07:00")
			s.tables[table] = append(s.tables[table], row)
			writeStoreJSON(w, http.StatusCreated, []map[string]any{row})

		case http.MethodPatch:
			var patch map[string]any
			if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				fmt.Fprintf(w, `{"message":%q}`, err.Error())
				return
			}
			var updated []map[string]any
			for _, row := range rows {
				if matches(row) {
					for column, value := range patch {
						row[column] = value
					}
					updated = append(updated, row)
				}
			}
			writeStoreJSON(w, http.StatusOK, updated)

		case http.MethodDelete:
			var kept []map[string]any
			for _, row := range rows {
				if !matches(row) {
					kept = append(kept, row)
				}
			}
			s.tables[table] = kept
			w.WriteHeader(http.StatusNoContent)

		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
}

func (s *fakeStore) count(table string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tables[table])
}

func writeStoreJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}
