package figma

import (
	"net/http"
	"net/http/httptest"
	"reflect"
	"sync/atomic"
	"testing"
)

func TestExtractFileKey(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{
			name: "valid /file/ URL",
			url:  "https://www.figma.com/file/ABC123XYZ/Design-Name",
			want: "ABC123XYZ",
		},
		{
			name: "valid /design/ URL with node-id",
			url:  "https://www.figma.com/design/4gkABR5gEZnIvlCaXmA4KI/Swatches?node-id=11933-305884",
			want: "4gkABR5gEZnIvlCaXmA4KI",
		},
		{
			name: "URL without www and with http",
			url:  "http://figma.com/file/ABC123XYZ/",
			want: "ABC123XYZ",
		},
		{
			name:    "missing file key",
			url:     "https://www.figma.com/file/",
			wantErr: true,
		},
		{
			name:    "wrong domain",
			url:     "https://www.example.com/file/ABC123XYZ",
			wantErr: true,
		},
		{
			name:    "empty URL",
			url:     "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractFileKey(tt.url)
			if (err != nil) != tt.wantErr {
				t.Errorf("ExtractFileKey() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ExtractFileKey() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtractNodeIDs(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want []string
	}{
		{
			name: "dash form is converted",
			url:  "https://www.figma.com/design/ABC/Swatches?node-id=11933-305884&t=xyz-1",
			want: []string{"11933:305884"},
		},
		{
			name: "multiple mixed ids",
			url:  "https://www.figma.com/file/ABC/Design?node-id=1:2,3-4",
			want: []string{"1:2", "3:4"},
		},
		{
			name: "url-encoded colon",
			url:  "https://www.figma.com/file/ABC/Design?node-id=12%3A34",
			want: []string{"12:34"},
		},
		{
			name: "node-id as middle parameter",
			url:  "https://www.figma.com/file/ABC/Design?first=value&node-id=5:6&last=value",
			want: []string{"5:6"},
		},
		{
			name: "hash fragment",
			url:  "https://www.figma.com/file/ABC/Design#7:8,9:10",
			want: []string{"7:8", "9:10"},
		},
		{
			name: "nodes path",
			url:  "https://www.figma.com/file/ABC/Design/nodes/11:12",
			want: []string{"11:12"},
		},
		{
			name: "spaces and duplicates",
			url:  "https://www.figma.com/file/ABC/Design?node-id=1:2, 1:2 ,3:4",
			want: []string{"1:2", "3:4"},
		},
		{
			name: "no node ids",
			url:  "https://www.figma.com/file/ABC/Design",
			want: []string{},
		},
		{
			name: "empty node-id parameter",
			url:  "https://www.figma.com/file/ABC/Design?node-id=",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractNodeIDs(tt.url)
			if err != nil {
				t.Fatalf("ExtractNodeIDs() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractNodeIDs() = %v, want %v", got, tt.want)
			}
		})
	}
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient("secret")
	c.baseURL = srv.URL
	c.retryDelay = 0
	return c
}

func TestGetFileNodes(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-Figma-Token"); got != "secret" {
			t.Errorf("X-Figma-Token = %q, want %q", got, "secret")
		}
		if r.URL.Path != "/files/KEY/nodes" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("ids"); got != "1:2,3:4" {
			t.Errorf("ids = %q, want %q", got, "1:2,3:4")
		}
		w.Write([]byte(`{"name":"Swatches","nodes":{"1:2":{"document":{"id":"1:2","name":"Red","type":"RECTANGLE",
			"fills":[{"type":"SOLID","color":{"r":1,"g":0,"b":0,"a":1}}]}}}}`))
	})

	resp, err := c.GetFileNodes("KEY", []string{"1:2", "3:4"})
	if err != nil {
		t.Fatalf("GetFileNodes() error = %v", err)
	}
	if resp.Name != "Swatches" {
		t.Errorf("Name = %q, want %q", resp.Name, "Swatches")
	}
	node, ok := resp.Nodes["1:2"]
	if !ok {
		t.Fatal("node 1:2 missing from response")
	}
	if node.Document.Type != "RECTANGLE" || len(node.Document.Fills) != 1 {
		t.Errorf("unexpected node: %+v", node.Document)
	}

	if _, err := c.GetFileNodes("KEY", nil); err == nil {
		t.Error("GetFileNodes() without ids expected error")
	}
}

func TestGetFileRetries(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`{"name":"Poster","document":{"id":"0:0","type":"DOCUMENT"}}`))
	})

	resp, err := c.GetFile("KEY")
	if err != nil {
		t.Fatalf("GetFile() error = %v", err)
	}
	if resp.Name != "Poster" {
		t.Errorf("Name = %q, want %q", resp.Name, "Poster")
	}
	if calls.Load() != 3 {
		t.Errorf("server called %d times, want 3", calls.Load())
	}
}

func TestGetFileClientError(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "forbidden", http.StatusForbidden)
	})

	if _, err := c.GetFile("KEY"); err == nil {
		t.Fatal("GetFile() expected error")
	}
	if calls.Load() != 1 {
		t.Errorf("4xx response retried: %d calls", calls.Load())
	}
}
