package endpoint

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/kaptinlin/jsonschema"
)

const schemaSuffix = ".schema.json"

// Registry holds the compiled document schemas loaded from the resource
// tree. It is rebuilt from disk on every construction so a fresh harness
// always sees the currently synced schemas.
type Registry struct {
	schemas map[string]*jsonschema.Schema
	latest  map[string]int
}

// LoadRegistry walks <resourcesPath>/schemas/<namespace>/ and compiles every
// <doctype>.<version>.schema.json it finds. Files that do not match the
// naming convention are skipped.
func LoadRegistry(resourcesPath string) (*Registry, error) {
	root := filepath.Join(resourcesPath, "schemas")
	reg := &Registry{
		schemas: make(map[string]*jsonschema.Schema),
		latest:  make(map[string]int),
	}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// No schemas directory yet: every submission will 404, which
			// the report surfaces as error counts rather than a crash.
			if path == root && os.IsNotExist(err) {
				return fs.SkipAll
			}
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), schemaSuffix) {
			return nil
		}

		doctype, version, ok := parseSchemaName(d.Name())
		if !ok {
			return nil
		}
		namespace := filepath.Base(filepath.Dir(path))

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading schema %s: %w", path, err)
		}
		schema, err := jsonschema.NewCompiler().Compile(data)
		if err != nil {
			return fmt.Errorf("compiling schema %s: %w", path, err)
		}

		key := schemaKey(namespace, doctype, version)
		reg.schemas[key] = schema
		if latestKey := namespace + "/" + doctype; version > reg.latest[latestKey] {
			reg.latest[latestKey] = version
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return reg, nil
}

// Resolve returns the schema for a namespace/doctype/version triple. An
// empty version resolves to the highest registered version for the doctype.
func (r *Registry) Resolve(namespace, doctype, version string) (*jsonschema.Schema, bool) {
	v := 0
	if version == "" {
		v = r.latest[namespace+"/"+doctype]
	} else {
		parsed, err := strconv.Atoi(version)
		if err != nil {
			return nil, false
		}
		v = parsed
	}

	schema, ok := r.schemas[schemaKey(namespace, doctype, v)]
	return schema, ok
}

// Len reports how many schemas are registered.
func (r *Registry) Len() int { return len(r.schemas) }

func schemaKey(namespace, doctype string, version int) string {
	return fmt.Sprintf("%s/%s/%d", namespace, doctype, version)
}

// parseSchemaName splits <doctype>.<version>.schema.json.
func parseSchemaName(name string) (doctype string, version int, ok bool) {
	stem := strings.TrimSuffix(name, schemaSuffix)
	idx := strings.LastIndex(stem, ".")
	if idx <= 0 {
		return "", 0, false
	}
	version, err := strconv.Atoi(stem[idx+1:])
	if err != nil || version < 0 {
		return "", 0, false
	}
	return stem[:idx], version, true
}
