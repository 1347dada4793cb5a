// Package fetch retrieves the HTML pages of a drama.
//
// Three Fetcher implementations are provided:
//
//   - HTTPFetcher: plain HTTP GET, rate limited, decodes the page charset to UTF-8
//   - BrowserFetcher: loads the page in headless Chrome (go-rod) and returns
//     the rendered DOM, for sites that assemble the text with JavaScript
//   - FileFetcher: reads pages saved to disk
//
// FetchAll fetches a page sequence with bounded parallelism and returns the
// pages in input order. PageURLs derives the sequence from the first page URL.
package fetch
