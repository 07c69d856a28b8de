package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"time"
)

// target is one read-only route checked against both backends.
type target struct {
	Path     string `json:"path"`
	Critical bool   `json:"critical"`
	// Ignore lists object keys whose values legitimately differ between backends.
	Ignore []string `json:"ignore"`
}

type result struct {
	Target        target
	CurrentStatus int
	LegacyStatus  int
	StatusMatch   bool
	BodyMatch     bool
	Err           error
	Current       time.Duration
	Legacy        time.Duration
}

func (r result) failed() bool {
	return r.Err != nil || !r.StatusMatch || !r.BodyMatch
}

type prober struct {
	client     *http.Client
	currentURL string
	legacyURL  string
	token      string
}

func (p *prober) check(t target) result {
	res := result{Target: t}

	curStatus, curBody, curDur, err := p.fetch(p.currentURL, t.Path)
	if err != nil {
		res.Err = fmt.Errorf("current backend: %w", err)
		return res
	}
	legStatus, legBody, legDur, err := p.fetch(p.legacyURL, t.Path)
	if err != nil {
		res.Err = fmt.Errorf("legacy backend: %w", err)
		return res
	}

	res.CurrentStatus, res.LegacyStatus = curStatus, legStatus
	res.Current, res.Legacy = curDur, legDur
	res.StatusMatch = curStatus == legStatus
	res.BodyMatch = sameJSON(curBody, legBody, t.Ignore)
	return res
}

func (p *prober) fetch(base, path string) (int, []byte, time.Duration, error) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	req, err := http.NewRequest(http.MethodGet, strings.TrimRight(base, "/")+path, nil)
	if err != nil {
		return 0, nil, 0, err
	}
	if p.token != "" {
		req.Header.Set("Authorization", "Bearer "+p.token)
	}

	start := time.Now()
	resp, err := p.client.Do(req)
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

// sameJSON compares two payloads structurally after dropping ignored keys at any depth.
// Non-JSON payloads must match byte for byte.
func sameJSON(a, b []byte, ignore []string) bool {
	if bytes.Equal(bytes.TrimSpace(a), bytes.TrimSpace(b)) {
		return true
	}
	var av, bv interface{}
	if json.Unmarshal(a, &av) != nil || json.Unmarshal(b, &bv) != nil {
		return false
	}
	skip := make(map[string]struct{}, len(ignore))
	for _, k := range ignore {
		skip[k] = struct{}{}
	}
	return reflect.DeepEqual(prune(av, skip), prune(bv, skip))
}

func prune(v interface{}, skip map[string]struct{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, child := range val {
			if _, ok := skip[k]; ok {
				continue
			}
			out[k] = prune(child, skip)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, child := range val {
			out[i] = prune(child, skip)
		}
		return out
	default:
		return val
	}
}
