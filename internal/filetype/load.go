package filetype

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog/log"

	"github.com/xonecas/kite/internal/highlight"
)

// entry is one [filetypes.<ext>] table.
type entry struct {
	Name          string   `toml:"name"`
	Numbers       bool     `toml:"numbers"`
	Strings       bool     `toml:"strings"`
	Characters    bool     `toml:"characters"`
	Comments      bool     `toml:"comments"`
	PrimaryKeys   []string `toml:"primary_keys"`
	SecondaryKeys []string `toml:"secondary_keys"`
}

type file struct {
	Filetypes map[string]entry `toml:"filetypes"`
}

// DecodeError describes an invalid filetype entry.
type DecodeError struct {
	Ext    string
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("filetypes.%s: %s", e.Ext, e.Reason)
}

// LoadFile merges the filetypes defined in a TOML file into r. Entries
// replace built-ins with the same extension.
func (r *Registry) LoadFile(path string) error {
	var f file
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return fmt.Errorf("failed to parse filetypes: %w", err)
	}
	warnUndecoded(path, md)
	return r.merge(f)
}

// Load is LoadFile for an already opened source.
func (r *Registry) Load(rd io.Reader) error {
	var f file
	md, err := toml.NewDecoder(rd).Decode(&f)
	if err != nil {
		return fmt.Errorf("failed to parse filetypes: %w", err)
	}
	warnUndecoded("<reader>", md)
	return r.merge(f)
}

func (r *Registry) merge(f file) error {
	var errs []error
	parsed := make(map[string]FileType, len(f.Filetypes))
	for ext, e := range f.Filetypes {
		ft, err := e.fileType(ext)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		parsed[ext] = ft
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	for ext, ft := range parsed {
		r.Register(ext, ft)
		log.Debug().Str("ext", ext).Str("name", ft.Name).
			Int("primary", len(ft.Options.PrimaryKeys)).
			Int("secondary", len(ft.Options.SecondaryKeys)).
			Msg("filetype: registered")
	}
	return nil
}

func (e entry) fileType(ext string) (FileType, error) {
	if normalizeExt(ext) == "" {
		return FileType{}, &DecodeError{Ext: ext, Reason: "extension is empty"}
	}
	if strings.TrimSpace(e.Name) == "" {
		return FileType{}, &DecodeError{Ext: ext, Reason: "name is required"}
	}
	for _, list := range [][]string{e.PrimaryKeys, e.SecondaryKeys} {
		for _, kw := range list {
			if kw == "" || strings.ContainsAny(kw, " \t\r\n") {
				return FileType{}, &DecodeError{Ext: ext, Reason: fmt.Sprintf("invalid keyword %q", kw)}
			}
		}
	}
	return FileType{
		Name: e.Name,
		Options: highlight.Options{
			Numbers:       e.Numbers,
			Strings:       e.Strings,
			Characters:    e.Characters,
			Comments:      e.Comments,
			PrimaryKeys:   e.PrimaryKeys,
			SecondaryKeys: e.SecondaryKeys,
		},
	}, nil
}

func warnUndecoded(src string, md toml.MetaData) {
	for _, key := range md.Undecoded() {
		log.Warn().Str("source", src).Str("key", key.String()).Msg("filetype: unknown key ignored")
	}
}
