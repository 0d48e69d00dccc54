// Package docs holds the embedded help topics behind `gg topic`.
package docs

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed *.md
var topicFS embed.FS

// GetTopic returns the markdown body of one topic.
func GetTopic(name string) (string, error) {
	b, err := topicFS.ReadFile(name + ".md")
	if err != nil {
		return "", fmt.Errorf("no documentation topic %q: %w", name, err)
	}
	return string(b), nil
}

// GetTopics concatenates the named topics in order. The name "*" expands
// to every topic except the readme.
func GetTopics(names ...string) (string, error) {
	var expanded []string
	for _, name := range names {
		if name != "*" {
			expanded = append(expanded, name)
			continue
		}
		all, err := GetAllTopics()
		if err != nil {
			return "", err
		}
		expanded = append(expanded, all...)
	}

	var b strings.Builder
	for _, name := range expanded {
		body, err := GetTopic(name)
		if err != nil {
			return "", err
		}
		b.WriteString(body)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// GetAllTopics lists every topic name, sorted. The readme is the index,
// not itself a topic.
func GetAllTopics() ([]string, error) {
	files, err := fs.Glob(topicFS, "*.md")
	if err != nil {
		return nil, err
	}
	topics := make([]string, 0, len(files))
	for _, f := range files {
		name := strings.TrimSuffix(f, ".md")
		if name == "readme" {
			continue
		}
		topics = append(topics, name)
	}
	sort.Strings(topics)
	return topics, nil
}
