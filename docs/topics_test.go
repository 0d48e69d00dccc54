package docs

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func TestTopics(t *testing.T) {
	// This test ensures that the documentation is in sync with the code:
	// 1. Every topic listed in readme.md can be loaded by `gg topic <name>`.
	// 2. Every .md file (except readme.md) is listed in readme.md.

	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var topicsInReadme []string
	scanner := bufio.NewScanner(file)
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	for scanner.Scan() {
		if matches := topicRegex.FindStringSubmatch(scanner.Text()); len(matches) > 1 {
			topicsInReadme = append(topicsInReadme, strings.TrimSpace(matches[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}

	for _, topic := range topicsInReadme {
		t.Run("load_"+topic, func(t *testing.T) {
			if _, err := GetTopic(topic); err != nil {
				t.Errorf("failed to get topic %q: %v", topic, err)
			}
		})
	}

	all, err := GetAllTopics()
	if err != nil {
		t.Fatalf("failed to list topics: %v", err)
	}
	for _, topic := range all {
		found := false
		for _, listed := range topicsInReadme {
			if listed == topic {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("topic %q is not listed in readme.md", topic)
		}
	}
}

// TestCodeBlocks checks that every fenced code block in the docs declares
// a language, so the terminal renderer can highlight it.
func TestCodeBlocks(t *testing.T) {
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}

	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			content, err := os.ReadFile(file)
			if err != nil {
				t.Fatalf("failed to read %s: %v", file, err)
			}

			root := goldmark.DefaultParser().Parse(text.NewReader(content))
			ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
				if !entering {
					return ast.WalkContinue, nil
				}
				if fcb, ok := n.(*ast.FencedCodeBlock); ok {
					if fcb.Info == nil || len(strings.TrimSpace(string(fcb.Info.Segment.Value(content)))) == 0 {
						t.Errorf("%s: fenced code block without a language", file)
					}
				}
				return ast.WalkContinue, nil
			})
		})
	}
}
