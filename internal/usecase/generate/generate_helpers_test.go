package generate

import (
	"github.com/poruru/sws-schedules/internal/domain/template"
	"github.com/poruru/sws-schedules/internal/infra/service"
	"github.com/poruru/sws-schedules/internal/infra/templatefile"
	"github.com/poruru/sws-schedules/internal/infra/ui"
)

type fakeConfigLoader struct {
	cfg   service.Config
	err   error
	paths []string
}

func (f *fakeConfigLoader) Load(path string) (service.Config, error) {
	f.paths = append(f.paths, path)
	return f.cfg, f.err
}

type savedTemplate struct {
	path   string
	doc    template.Document
	format templatefile.Format
}

type memoryStore struct {
	docs   map[string]template.Document
	format templatefile.Format
	saved  []savedTemplate
	loads  int
}

func (s *memoryStore) Load(path string) (template.Document, templatefile.Format, error) {
	s.loads++
	doc, ok := s.docs[path]
	if !ok {
		return nil, "", templatefile.ErrNotFound
	}
	return doc, s.format, nil
}

func (s *memoryStore) Save(path string, doc template.Document, format templatefile.Format) error {
	s.saved = append(s.saved, savedTemplate{path: path, doc: doc, format: format})
	return nil
}

type testUI struct {
	success []string
	info    []string
	warn    []string
	lists   [][]string
	blocks  [][]ui.KeyValue
}

func (u *testUI) Success(msg string) {
	u.success = append(u.success, msg)
}

func (u *testUI) Info(msg string) {
	u.info = append(u.info, msg)
}

func (u *testUI) Warn(msg string) {
	u.warn = append(u.warn, msg)
}

func (u *testUI) Block(_, _ string, rows []ui.KeyValue) {
	u.blocks = append(u.blocks, rows)
}

func (u *testUI) List(_, _ string, items []string) {
	u.lists = append(u.lists, items)
}
