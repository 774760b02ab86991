// Package bookmarks extracts share links from a local text or HTML file,
// such as a browser bookmarks export.
package bookmarks

import (
	"bufio"
	"os"
	"regexp"
	"strings"

	"github.com/glorpus-work/mfdl/pkg/errors"
)

var urlPattern = regexp.MustCompile(`https?://[^\s"'<>]+`)

// ExtractLinks scans the file at path line by line and returns every URL it
// contains, in order of appearance. When hostFilter is non-empty only URLs
// containing that substring are returned.
func ExtractLinks(path, hostFilter string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}
	defer func() { _ = f.Close() }()

	var links []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		for _, link := range urlPattern.FindAllString(scanner.Text(), -1) {
			if hostFilter != "" && !strings.Contains(link, hostFilter) {
				continue
			}
			links = append(links, link)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	return links, nil
}
