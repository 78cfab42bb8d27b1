// (c) Copyright 2016 Hewlett Packard Enterprise Development LP
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package neatcommit

import (
	"fmt"
	"regexp"
	"strings"
)

// FileList is a set of glob patterns selecting paths that are never
// analyzed. It implements pflag.Value so it can back a repeatable flag.
//
// Patterns follow the usual ignore-file conventions: '*' and '?' stay within
// one path segment, "**/" spans any number of directories, a pattern without
// a slash matches at any depth and a matching directory covers everything
// below it.
type FileList struct {
	patterns []string
	compiled []*regexp.Regexp
}

// NewFileList compiles the given glob patterns.
func NewFileList(patterns ...string) (*FileList, error) {
	f := &FileList{}
	for _, p := range patterns {
		if err := f.Set(p); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func (f *FileList) String() string {
	return strings.Join(f.patterns, ", ")
}

// Set adds a pattern.
func (f *FileList) Set(val string) error {
	val = strings.TrimSpace(val)
	if val == "" {
		return nil
	}
	re, err := globToRegexp(val)
	if err != nil {
		return err
	}
	f.patterns = append(f.patterns, val)
	f.compiled = append(f.compiled, re)
	return nil
}

// Type names the flag value type.
func (f *FileList) Type() string {
	return "glob"
}

// Patterns returns the patterns in the order they were added.
func (f *FileList) Patterns() []string {
	return append([]string(nil), f.patterns...)
}

// Contains reports whether pathname is selected by any pattern.
func (f *FileList) Contains(pathname string) bool {
	if f == nil || len(f.compiled) == 0 {
		return false
	}
	normalized := strings.TrimPrefix(strings.ReplaceAll(pathname, "\\", "/"), "./")
	for _, re := range f.compiled {
		if re.MatchString(normalized) {
			return true
		}
	}
	return false
}

func globToRegexp(pattern string) (*regexp.Regexp, error) {
	p := strings.TrimSuffix(strings.TrimPrefix(pattern, "./"), "/")
	var sb strings.Builder
	sb.WriteString("^")
	if !strings.Contains(p, "/") {
		sb.WriteString("(?:.*/)?")
	}
	p = strings.TrimPrefix(p, "/")
	for i := 0; i < len(p); i++ {
		switch c := p[i]; c {
		case '*':
			if i+1 < len(p) && p[i+1] == '*' {
				i++
				if i+1 < len(p) && p[i+1] == '/' {
					i++
					sb.WriteString("(?:.*/)?")
				} else {
					sb.WriteString(".*")
				}
				continue
			}
			sb.WriteString("[^/]*")
		case '?':
			sb.WriteString("[^/]")
		case '[':
			end := strings.IndexByte(p[i+1:], ']')
			if end < 0 {
				return nil, fmt.Errorf("ignore pattern %q: unterminated character class", pattern)
			}
			class := p[i+1 : i+1+end]
			if strings.HasPrefix(class, "!") {
				class = "^" + class[1:]
			}
			sb.WriteString("[" + class + "]")
			i += end + 1
		default:
			sb.WriteString(regexp.QuoteMeta(p[i : i+1]))
		}
	}
	sb.WriteString("(?:/.*)?$")
	re, err := regexp.Compile(sb.String())
	if err != nil {
		return nil, fmt.Errorf("ignore pattern %q: %w", pattern, err)
	}
	return re, nil
}
