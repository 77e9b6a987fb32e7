package settings

import "strings"

const dashscopeHost = "dashscope.aliyuncs.com"

// normalizeBailianBaseURL rewrites the Bailian endpoint in place on a merged
// settings map. Users paste the DashScope OpenAI-compatible REST URL; speech
// synthesis needs the websocket streaming endpoint, so HTTP(S) URLs on the
// DashScope host are canonicalized. Any other non-empty value is kept
// verbatim (self-hosted proxies), and an empty value falls back to the
// default endpoint.
func normalizeBailianBaseURL(merged map[string]any) {
	bailian := section(section(merged, "tts"), "bailian")
	if len(bailian) == 0 {
		return
	}

	baseURL, _ := bailian["baseUrl"].(string)
	switch {
	case baseURL == "":
		bailian["baseUrl"] = BailianStreamingEndpoint
	case isHTTPScheme(baseURL) && strings.Contains(baseURL, dashscopeHost):
		bailian["baseUrl"] = BailianStreamingEndpoint
	}
}

func isHTTPScheme(url string) bool {
	return strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://")
}
