package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/pelletier/go-toml/v2"
)

// SetAPIKey stores key under [tmdb].api_key in the config file at path,
// creating the file when missing. Only the api_key line is rewritten, so
// comments and other settings survive; files where the key cannot be located
// line by line (inline tables, dotted keys) are re-encoded, which drops
// comments. The rewrite happens under an advisory lock on "<path>.lock".
func SetAPIKey(path, key string) error {
	path, err := expandPath(path)
	if err != nil {
		return err
	}
	if path == "" {
		return errors.New("config path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("lock config: %w", err)
	}
	defer lock.Unlock()

	key = strings.TrimSpace(key)
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist):
		data = nil
	default:
		return fmt.Errorf("read config: %w", err)
	}

	doc := map[string]any{}
	if err := toml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	out, err := patchAPIKey(data, key)
	if err != nil {
		return err
	}
	if storedAPIKey(out) != key {
		if out, err = reencodeAPIKey(doc, key); err != nil {
			return err
		}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, out, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace config: %w", err)
	}
	return nil
}

// patchAPIKey replaces the api_key assignment inside [tmdb], inserting one
// after the table header or appending a new table when either is missing.
func patchAPIKey(data []byte, key string) ([]byte, error) {
	line, err := toml.Marshal(map[string]string{"api_key": key})
	if err != nil {
		return nil, fmt.Errorf("encode api key: %w", err)
	}
	assignment := strings.TrimSpace(string(line))

	lines := strings.Split(string(data), "\n")
	header := -1
	inTMDB := false
	for i, raw := range lines {
		trimmed := strings.TrimSpace(raw)
		if strings.HasPrefix(trimmed, "[") {
			if inTMDB {
				break
			}
			inTMDB = tableName(trimmed) == "tmdb"
			if inTMDB {
				header = i
			}
			continue
		}
		if !inTMDB {
			continue
		}
		name, _, ok := strings.Cut(trimmed, "=")
		if ok && strings.TrimSpace(name) == "api_key" {
			lines[i] = assignment
			return []byte(strings.Join(lines, "\n")), nil
		}
	}

	if header >= 0 {
		lines = append(lines[:header+1], append([]string{assignment}, lines[header+1:]...)...)
		return []byte(strings.Join(lines, "\n")), nil
	}
	text := strings.Join(lines, "\n")
	if text != "" && !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	if text != "" {
		text += "\n"
	}
	return []byte(text + "[tmdb]\n" + assignment + "\n"), nil
}

func tableName(header string) string {
	if strings.HasPrefix(header, "[[") {
		return ""
	}
	end := strings.IndexByte(header, ']')
	if end < 0 {
		return ""
	}
	return strings.TrimSpace(header[1:end])
}

// storedAPIKey reports the key a config document resolves to, or a value
// that never matches a real key when the document does not parse.
func storedAPIKey(data []byte) string {
	var doc struct {
		TMDB struct {
			APIKey *string `toml:"api_key"`
		} `toml:"tmdb"`
	}
	if err := toml.Unmarshal(data, &doc); err != nil || doc.TMDB.APIKey == nil {
		return "\x00"
	}
	return *doc.TMDB.APIKey
}

func reencodeAPIKey(doc map[string]any, key string) ([]byte, error) {
	section, _ := doc["tmdb"].(map[string]any)
	if section == nil {
		section = map[string]any{}
	}
	section["api_key"] = key
	doc["tmdb"] = section

	out, err := toml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return out, nil
}
