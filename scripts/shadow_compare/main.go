// Command shadow_compare replays dashboard requests against MONEV and the SAS backend
// and reports where the proxied responses drift from what SAS returns directly.
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
	"strings"
	"time"
)

const (
	modeExact = "exact"
	modeJSON  = "json"
	modeData  = "data"
)

type target struct {
	Method string `json:"method"`
	// Path is the MONEV route including the API prefix and query.
	Path string `json:"path"`
	// UpstreamPath is the SAS route the MONEV route is expected to mirror.
	UpstreamPath string `json:"upstream_path"`
	// Mode selects how bodies are compared: exact bytes, normalised JSON, or only the data field.
	Mode     string `json:"mode"`
	Critical bool   `json:"critical"`
}

type targetsFile struct {
	Targets []target `json:"targets"`
}

type comparison struct {
	Target           target
	MonevStatus      int
	UpstreamStatus   int
	StatusMatch      bool
	BodyMatch        bool
	Error            error
	DurationMonev    time.Duration
	DurationUpstream time.Duration
}

type endpoint struct {
	base  string
	token string
}

func main() {
	var (
		monevBase    string
		upstreamBase string
		token        string
		targetsPath  string
		timeout      time.Duration
	)

	flag.StringVar(&monevBase, "monev-base", "http://localhost:8080", "MONEV API base URL")
	flag.StringVar(&upstreamBase, "sas-base", envOr("SAS_BASE_URL", "http://localhost:3001"), "SAS backend base URL")
	flag.StringVar(&token, "sas-token", os.Getenv("SAS_AUTH_TOKEN"), "Bearer token for the SAS backend")
	flag.StringVar(&targetsPath, "targets", filepath.Join("scripts", "shadow_compare", "targets.json"), "Path to JSON targets file")
	flag.DurationVar(&timeout, "timeout", 10*time.Second, "HTTP client timeout")
	flag.Parse()

	if token == "" {
		log.Fatal("a SAS token is required (-sas-token or SAS_AUTH_TOKEN)")
	}

	targets, err := loadTargets(targetsPath)
	if err != nil {
		log.Fatalf("failed to load targets: %v", err)
	}

	client := &http.Client{Timeout: timeout}
	monev := endpoint{base: monevBase}
	sas := endpoint{base: upstreamBase, token: token}

	var (
		comparisons  []comparison
		breaking     int
		optionalDiff int
	)
	for _, t := range targets {
		comp := compareTarget(client, monev, sas, t)
		if comp.Error != nil || !comp.StatusMatch || !comp.BodyMatch {
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

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func loadTargets(path string) ([]target, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file targetsFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	if len(file.Targets) == 0 {
		return nil, fmt.Errorf("no targets defined in %s", path)
	}
	for i, t := range file.Targets {
		if t.Path == "" || t.UpstreamPath == "" {
			return nil, fmt.Errorf("target %d needs both path and upstream_path", i)
		}
		switch t.Mode {
		case "":
			file.Targets[i].Mode = modeJSON
		case modeExact, modeJSON, modeData:
		default:
			return nil, fmt.Errorf("target %d has unknown mode %q", i, t.Mode)
		}
	}
	return file.Targets, nil
}

func compareTarget(client *http.Client, monev, sas endpoint, tgt target) comparison {
	comp := comparison{Target: tgt}
	monevBody, monevStatus, monevDur, err := fetch(client, monev, tgt.Method, tgt.Path)
	if err != nil {
		comp.Error = fmt.Errorf("monev request failed: %w", err)
		return comp
	}
	upstreamBody, upstreamStatus, upstreamDur, err := fetch(client, sas, tgt.Method, tgt.UpstreamPath)
	if err != nil {
		comp.Error = fmt.Errorf("sas request failed: %w", err)
		return comp
	}

	comp.MonevStatus, comp.UpstreamStatus = monevStatus, upstreamStatus
	comp.DurationMonev, comp.DurationUpstream = monevDur, upstreamDur
	comp.StatusMatch = monevStatus == upstreamStatus
	comp.BodyMatch = bodiesMatch(tgt.Mode, monevBody, upstreamBody)
	return comp
}

func fetch(client *http.Client, ep endpoint, method, path string) ([]byte, int, time.Duration, error) {
	if client == nil {
		return nil, 0, 0, errors.New("nil client")
	}
	method = strings.ToUpper(strings.TrimSpace(method))
	if method == "" {
		method = http.MethodGet
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	req, err := http.NewRequest(method, strings.TrimRight(ep.base, "/")+path, nil)
	if err != nil {
		return nil, 0, 0, err
	}
	req.Header.Set("Accept", "application/json")
	if ep.token != "" {
		req.Header.Set("Authorization", "Bearer "+ep.token)
	}

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		return nil, 0, 0, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("read body: %w", err)
	}
	return body, resp.StatusCode, time.Since(start), nil
}

func bodiesMatch(mode string, a, b []byte) bool {
	switch mode {
	case modeExact:
		return bytes.Equal(a, b)
	case modeData:
		return jsonEqual(a, b, "data")
	default:
		return jsonEqual(a, b, "")
	}
}

// jsonEqual compares two JSON documents, optionally only the value under field.
func jsonEqual(a, b []byte, field string) bool {
	if field == "" && bytes.Equal(bytes.TrimSpace(a), bytes.TrimSpace(b)) {
		return true
	}

	var aj, bj interface{}
	if err := json.Unmarshal(a, &aj); err != nil {
		return false
	}
	if err := json.Unmarshal(b, &bj); err != nil {
		return false
	}
	if field != "" {
		aj, bj = pick(aj, field), pick(bj, field)
	}
	normalize(&aj)
	normalize(&bj)
	return reflect.DeepEqual(aj, bj)
}

func pick(v interface{}, field string) interface{} {
	if m, ok := v.(map[string]interface{}); ok {
		return m[field]
	}
	return nil
}

func normalize(v *interface{}) {
	switch val := (*v).(type) {
	case map[string]interface{}:
		for k, v2 := range val {
			normalize(&v2)
			val[k] = v2
		}
	case []interface{}:
		for i, v2 := range val {
			normalize(&v2)
			val[i] = v2
		}
	case float64:
		if val == float64(int64(val)) {
			*v = int64(val)
		}
	}
}

func printReport(results []comparison) {
	fmt.Println("MONEV Shadow Compare Report")
	fmt.Println("===========================")
	for _, res := range results {
		status := "OK"
		if res.Error != nil {
			status = "ERROR"
		} else if !res.StatusMatch || !res.BodyMatch {
			status = "DIFF"
		}
		fmt.Printf("[%s] %s %s -> %s (%s)\n", status, res.Target.Method, res.Target.Path, res.Target.UpstreamPath, res.Target.Mode)
		fmt.Printf("  MONEV: %d (%s)\n", res.MonevStatus, res.DurationMonev)
		fmt.Printf("  SAS:   %d (%s)\n", res.UpstreamStatus, res.DurationUpstream)
		if res.Error != nil {
			fmt.Printf("  Error: %v\n", res.Error)
		} else {
			fmt.Printf("  Status match: %t | Body match: %t | Critical: %t\n", res.StatusMatch, res.BodyMatch, res.Target.Critical)
		}
	}
}
