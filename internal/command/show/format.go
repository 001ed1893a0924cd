package show

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/magiconair/properties"
	"github.com/pelletier/go-toml/v2"
	yamlv3 "go.yaml.in/yaml/v3"

	"github.com/lwmacct/251218-go-pkg-dotenv/pkg/envmap"
)

type formatFunc func(w io.Writer, env *envmap.Env) error

var formats = map[string]formatFunc{
	"dotenv":     writeDotenv,
	"json":       writeJSON,
	"yaml":       writeYAML,
	"toml":       writeTOML,
	"properties": writeProperties,
}

func formatNames() string {
	names := make([]string, 0, len(formats))
	for name := range formats {
		names = append(names, name)
	}
	slices.Sort(names)

	return strings.Join(names, "|")
}

var dotenvEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	`$`, `\$`,
	"\n", `\n`,
	"\r", `\r`,
)

// writeDotenv 输出可被再次加载的 KEY="VALUE"，$ 被转义以免再次替换。
func writeDotenv(w io.Writer, env *envmap.Env) error {
	for _, key := range env.Keys() {
		value, _ := env.Local(key)
		if _, err := fmt.Fprintf(w, "%s=\"%s\"\n", key, dotenvEscaper.Replace(value)); err != nil {
			return err
		}
	}

	return nil
}

func writeJSON(w io.Writer, env *envmap.Env) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(env.Map())
}

// writeYAML 按文件顺序输出映射。
func writeYAML(w io.Writer, env *envmap.Env) error {
	root := &yamlv3.Node{Kind: yamlv3.MappingNode}
	for _, key := range env.Keys() {
		value, _ := env.Local(key)
		root.Content = append(root.Content,
			&yamlv3.Node{Kind: yamlv3.ScalarNode, Tag: "!!str", Value: key},
			&yamlv3.Node{Kind: yamlv3.ScalarNode, Tag: "!!str", Value: value},
		)
	}

	enc := yamlv3.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return err
	}

	return enc.Close()
}

func writeTOML(w io.Writer, env *envmap.Env) error {
	return toml.NewEncoder(w).Encode(env.Map())
}

func writeProperties(w io.Writer, env *envmap.Env) error {
	p := properties.NewProperties()
	p.DisableExpansion = true
	for _, key := range env.Keys() {
		value, _ := env.Local(key)
		if _, _, err := p.Set(key, value); err != nil {
			return err
		}
	}

	_, err := p.Write(w, properties.UTF8)

	return err
}
