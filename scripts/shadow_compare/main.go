// Command shadow_compare replays a list of requests against the legacy
// student API and this service and reports status and body differences.
package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"
	"time"
)

type target struct {
	Method    string            `json:"method"`
	Path      string            `json:"path"`
	Body      json.RawMessage   `json:"body,omitempty"`
	Headers   map[string]string `json:"headers,omitempty"`
	Critical  bool              `json:"critical"`
	Unordered bool              `json:"unordered"`
}

type targetFile struct {
	Targets []target `json:"targets"`
}

type client struct {
	http      *http.Client
	token     string
	mediaType string
}

type comparison struct {
	Target         target
	LegacyStatus   int
	GoStatus       int
	StatusMatch    bool
	BodyMatch      bool
	Error          error
	DurationGo     time.Duration
	DurationLegacy time.Duration
}

func main() {
	var (
		goBase      string
		legacyBase  string
		targetsPath string
		token       string
		mediaType   string
		timeout     time.Duration
	)

	flag.StringVar(&goBase, "go-base", "http://localhost:8080", "Go API base URL")
	flag.StringVar(&legacyBase, "legacy-base", "http://localhost:8081/ColleagueApi", "Legacy API base URL")
	flag.StringVar(&targetsPath, "targets", filepath.Join("scripts", "shadow_compare", "targets.json"), "Path to JSON targets file")
	flag.StringVar(&token, "token", os.Getenv("SHADOW_TOKEN"), "Bearer token sent to both APIs")
	flag.StringVar(&mediaType, "media-type", "application/vnd.hedtech.integration.v1+json", "Accept header sent unless a target overrides it")
	flag.DurationVar(&timeout, "timeout", 5*time.Second, "HTTP client timeout")
	flag.Parse()

	targets, err := loadTargets(targetsPath)
	if err != nil {
		log.Fatalf("failed to load targets: %v", err)
	}

	c := &client{http: &http.Client{Timeout: timeout}, token: token, mediaType: mediaType}
	var (
		comparisons  []comparison
		breaking     int
		optionalDiff int
	)

	for _, t := range targets {
		comp := c.compare(goBase, legacyBase, t)
		switch {
		case comp.Error != nil && t.Critical:
			breaking++
		case comp.Error == nil && (!comp.StatusMatch || !comp.BodyMatch):
			if t.Critical {
				breaking++
			} else {
				optionalDiff++
			}
		}
		comparisons = append(comparisons, comp)
	}

	printReport(comparisons)

	fmt.Printf("Breaking diffs: %d, Optional diffs: %d\n", breaking, optionalDiff)
	if breaking > 0 {
		os.Exit(1)
	}
}

func loadTargets(path string) ([]target, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file targetFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	if len(file.Targets) == 0 {
		return nil, fmt.Errorf("no targets defined in %s", path)
	}
	return file.Targets, nil
}

func (c *client) compare(goBase, legacyBase string, tgt target) comparison {
	comp := comparison{Target: tgt}

	goStatus, goBody, goDur, err := c.do(goBase, tgt)
	if err != nil {
		comp.Error = fmt.Errorf("go request failed: %w", err)
		return comp
	}
	legacyStatus, legacyBody, legacyDur, err := c.do(legacyBase, tgt)
	if err != nil {
		comp.Error = fmt.Errorf("legacy request failed: %w", err)
		return comp
	}

	comp.GoStatus, comp.LegacyStatus = goStatus, legacyStatus
	comp.DurationGo, comp.DurationLegacy = goDur, legacyDur
	comp.StatusMatch = goStatus == legacyStatus
	comp.BodyMatch = bodiesEqual(goBody, legacyBody, tgt.Unordered)
	return comp
}

func (c *client) do(base string, tgt target) (int, []byte, time.Duration, error) {
	if c == nil || c.http == nil {
		return 0, nil, 0, errors.New("nil client")
	}
	req, err := c.newRequest(base, tgt)
	if err != nil {
		return 0, nil, 0, err
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, 0, fmt.Errorf("read body: %w", err)
	}
	return resp.StatusCode, body, time.Since(start), nil
}

func (c *client) newRequest(base string, tgt target) (*http.Request, error) {
	method := strings.ToUpper(strings.TrimSpace(tgt.Method))
	if method == "" {
		method = http.MethodGet
	}
	path := tgt.Path
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	var body io.Reader
	if len(tgt.Body) > 0 {
		body = bytes.NewReader(tgt.Body)
	}
	req, err := http.NewRequest(method, strings.TrimRight(base, "/")+path, body)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.mediaType != "" {
		req.Header.Set("Accept", c.mediaType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	for k, v := range tgt.Headers {
		req.Header.Set(k, v)
	}
	return req, nil
}

// bodiesEqual compares two JSON documents. With unordered set, arrays are
// compared as multisets.
func bodiesEqual(a, b []byte, unordered bool) bool {
	if bytes.Equal(bytes.TrimSpace(a), bytes.TrimSpace(b)) {
		return true
	}

	var aj, bj interface{}
	if err := json.Unmarshal(a, &aj); err != nil {
		return false
	}
	if err := json.Unmarshal(b, &bj); err != nil {
		return false
	}
	aj = normalize(aj, unordered)
	bj = normalize(bj, unordered)
	return reflect.DeepEqual(aj, bj)
}

func normalize(v interface{}, unordered bool) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		for k, item := range val {
			val[k] = normalize(item, unordered)
		}
		return val
	case []interface{}:
		for i, item := range val {
			val[i] = normalize(item, unordered)
		}
		if unordered {
			sort.SliceStable(val, func(i, j int) bool {
				return canonical(val[i]) < canonical(val[j])
			})
		}
		return val
	case float64:
		if val == float64(int64(val)) {
			return int64(val)
		}
		return val
	default:
		return val
	}
}

// canonical renders a value with sorted object keys so equal values sort
// next to each other.
func canonical(v interface{}) string {
	out, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(out)
}

func printReport(results []comparison) {
	fmt.Println("Shadow Compare Report")
	fmt.Println("======================")
	for _, res := range results {
		status := "OK"
		if res.Error != nil {
			status = "ERROR"
		} else if !res.StatusMatch || !res.BodyMatch {
			status = "DIFF"
		}
		fmt.Printf("[%s] %s %s\n", status, res.Target.Method, res.Target.Path)
		fmt.Printf("  Go Status: %d (%s)\n", res.GoStatus, res.DurationGo)
		fmt.Printf("  Legacy Status: %d (%s)\n", res.LegacyStatus, res.DurationLegacy)
		if res.Error != nil {
			fmt.Printf("  Error: %v\n", res.Error)
		} else {
			fmt.Printf("  Status match: %t | Body match: %t | Critical: %t\n", res.StatusMatch, res.BodyMatch, res.Target.Critical)
		}
	}
}
