package harness

import (
	"io"
	"net/http"
	"sort"
	"strings"

	"github.com/alessio/shellescape"
)

// FormatCurl renders a request as an equivalent curl command line, for diagnostics. It reads the
// body through req.GetBody, so the request can still be sent afterward.
func FormatCurl(req *http.Request) string {
	var b commandBuilder
	b.add("curl", "-X", req.Method)

	names := make([]string, 0, len(req.Header))
	for name := range req.Header {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		for _, v := range req.Header[name] {
			b.add("-H", name+": "+v)
		}
	}

	if body := requestBody(req); body != "" {
		b.add("-d", body)
	}

	b.add(req.URL.String())
	return b.String()
}

func requestBody(req *http.Request) string {
	if req.GetBody == nil {
		return ""
	}
	rc, err := req.GetBody()
	if err != nil {
		return ""
	}
	defer func() { _ = rc.Close() }()
	data, _ := io.ReadAll(rc)
	return string(data)
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}
