package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/montanaflynn/stats"
)

// Single-process load generator for the bookstore API. Each simulated user
// runs a weighted mix of journeys (browse, cart, full purchase) against a
// running server and records per-request latencies.

type sample struct {
	name    string
	elapsed float64 // milliseconds
	failed  bool
}

type recorder struct {
	mu      sync.Mutex
	samples map[string][]float64
	errors  map[string]int
}

func newRecorder() *recorder {
	return &recorder{
		samples: make(map[string][]float64),
		errors:  make(map[string]int),
	}
}

func (r *recorder) record(s sample) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s.failed {
		r.errors[s.name]++
		return
	}
	r.samples[s.name] = append(r.samples[s.name], s.elapsed)
}

func (r *recorder) report(w io.Writer) {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.samples))
	for name := range r.samples {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintf(w, "%-28s %8s %8s %8s %8s %8s %8s %6s\n",
		"request", "count", "mean", "median", "p95", "p99", "max", "errors")
	for _, name := range names {
		data := r.samples[name]
		mean, _ := stats.Mean(data)
		median, _ := stats.Median(data)
		p95, _ := stats.Percentile(data, 95)
		p99, _ := stats.Percentile(data, 99)
		max, _ := stats.Max(data)
		fmt.Fprintf(w, "%-28s %8d %7.1fms %7.1fms %7.1fms %7.1fms %7.1fms %6d\n",
			name, len(data), mean, median, p95, p99, max, r.errors[name])
	}
	for name, count := range r.errors {
		if _, ok := r.samples[name]; !ok {
			fmt.Fprintf(w, "%-28s %8d (all failed)\n", name, count)
		}
	}
}

type virtualUser struct {
	id      int
	baseURL string
	client  *http.Client
	rec     *recorder
	token   string
}

func newVirtualUser(id int, baseURL string, rec *recorder) *virtualUser {
	jar, _ := cookiejar.New(nil)
	return &virtualUser{
		id:      id,
		baseURL: baseURL,
		client:  &http.Client{Jar: jar, Timeout: 10 * time.Second},
		rec:     rec,
	}
}

func (u *virtualUser) get(name, path string) {
	start := time.Now()
	req, err := http.NewRequest(http.MethodGet, u.baseURL+path, nil)
	if err != nil {
		u.rec.record(sample{name: name, failed: true})
		return
	}
	if u.token != "" {
		req.Header.Set("Authorization", "Bearer "+u.token)
	}
	resp, err := u.client.Do(req)
	elapsed := float64(time.Since(start).Microseconds()) / 1000
	if err != nil || resp.StatusCode >= 500 {
		u.rec.record(sample{name: name, failed: true})
	} else {
		u.rec.record(sample{name: name, elapsed: elapsed})
	}
	if resp != nil {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}
}

func (u *virtualUser) post(name, path string, body any) map[string]any {
	payload, err := json.Marshal(body)
	if err != nil {
		u.rec.record(sample{name: name, failed: true})
		return nil
	}

	start := time.Now()
	req, err := http.NewRequest(http.MethodPost, u.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		u.rec.record(sample{name: name, failed: true})
		return nil
	}
	req.Header.Set("Content-Type", "application/json")
	if u.token != "" {
		req.Header.Set("Authorization", "Bearer "+u.token)
	}
	resp, err := u.client.Do(req)
	elapsed := float64(time.Since(start).Microseconds()) / 1000
	if err != nil || resp.StatusCode >= 500 {
		u.rec.record(sample{name: name, failed: true})
		if resp != nil {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
		}
		return nil
	}
	u.rec.record(sample{name: name, elapsed: elapsed})

	var decoded map[string]any
	json.NewDecoder(resp.Body).Decode(&decoded)
	resp.Body.Close()
	return decoded
}

var searchTerms = []string{"fiction", "science", "history", "gatsby", "hobbit"}

var bookTitles = []string{"The Great Gatsby", "The Sun Also Rises", "1984", "The Hobbit", "Sapiens"}

func (u *virtualUser) browseJourney(rng *rand.Rand) {
	u.get("GET /", "/")
	u.get("GET /books", "/books")
	title := bookTitles[rng.Intn(len(bookTitles))]
	u.get("GET /books/:title", "/books/"+url.PathEscape(title))
	u.get("GET /search", "/search?query="+searchTerms[rng.Intn(len(searchTerms))])
}

func (u *virtualUser) cartJourney(rng *rand.Rand) {
	title := bookTitles[rng.Intn(len(bookTitles))]
	u.post("POST /cart/items", "/cart/items", map[string]any{
		"title":    title,
		"quantity": rng.Intn(3) + 1,
	})
	u.get("GET /cart", "/cart")
}

func (u *virtualUser) purchaseJourney(rng *rand.Rand) {
	suffix := rng.Intn(1_000_000)
	emailAddr := fmt.Sprintf("loadtest%d-%d@example.com", u.id, suffix)
	password := "LoadTest123"

	reg := u.post("POST /auth/register", "/auth/register", map[string]any{
		"email":    emailAddr,
		"password": password,
		"name":     fmt.Sprintf("Load Tester %d", u.id),
		"address":  "123 Load St",
	})
	login := u.post("POST /auth/login", "/auth/login", map[string]any{
		"email":    emailAddr,
		"password": password,
	})
	if token, ok := tokenFrom(login); ok {
		u.token = token
	} else if token, ok := tokenFrom(reg); ok {
		u.token = token
	} else {
		return
	}

	u.cartJourney(rng)
	u.post("POST /checkout", "/checkout", map[string]any{
		"name":          "Load Tester",
		"address":       "123 Load St",
		"city":          "Loadville",
		"zipCode":       "12345",
		"paymentMethod": "cash",
	})
	u.get("GET /account/orders", "/account/orders")
	u.token = ""
}

func tokenFrom(body map[string]any) (string, bool) {
	if body == nil {
		return "", false
	}
	token, ok := body["accessToken"].(string)
	return token, ok && token != ""
}

func main() {
	baseURL := flag.String("base-url", "http://localhost:8080", "bookstore server to load")
	users := flag.Int("users", 10, "concurrent simulated users")
	duration := flag.Duration("duration", 30*time.Second, "how long to run")
	flag.Parse()

	log.Printf("[LOADTEST] [INFO] %d users against %s for %s", *users, *baseURL, *duration)

	rec := newRecorder()
	deadline := time.Now().Add(*duration)

	var wg sync.WaitGroup
	for i := 0; i < *users; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(time.Now().UnixNano() + int64(id)))
			vu := newVirtualUser(id, *baseURL, rec)
			for time.Now().Before(deadline) {
				switch roll := rng.Intn(10); {
				case roll < 5:
					vu.browseJourney(rng)
				case roll < 8:
					vu.cartJourney(rng)
				default:
					vu.purchaseJourney(rng)
				}
				time.Sleep(time.Duration(rng.Intn(400)+100) * time.Millisecond)
			}
		}(i)
	}
	wg.Wait()

	rec.report(os.Stdout)
}
