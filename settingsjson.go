package kansaiaccent

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/nullponull/kansai-accent-dictionary/data"
	"github.com/nullponull/kansai-accent-dictionary/dictionary"
	"github.com/shurcooL/httpfs/vfsutil"
)

const DefaultSettingsFile = "kansaiaccent.json"

type SettingsJSON struct {
	BaseConfig
	path                string
	pronunciationPlugin []json.RawMessage
}

func NewSettingsJSON() *SettingsJSON {
	return &SettingsJSON{
		BaseConfig: BaseConfig{
			Cost:      1,
			Delimiter: ",",
		},
	}
}

// LoadDefaultSettings parses the settings embedded in the data package.
func LoadDefaultSettings() (*SettingsJSON, error) {
	b, err := vfsutil.ReadFile(data.Assets, DefaultSettingsFile)
	if err != nil {
		return nil, fmt.Errorf("%s: (data.Assets)%s", err, DefaultSettingsFile)
	}
	settings := NewSettingsJSON()
	err = settings.ParseSettingsJSON("", bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("%s: (data.Assets)%s", err, DefaultSettingsFile)
	}
	return settings, nil
}

// LoadSettingsFile parses the embedded defaults and then overrides them
// with the keys present in path. Relative paths in the file are resolved
// against its directory unless it sets "path".
func LoadSettingsFile(path string) (*SettingsJSON, error) {
	settings, err := LoadDefaultSettings()
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	err = settings.ParseSettingsJSON(filepath.Dir(path), f)
	if err != nil {
		return nil, fmt.Errorf("%s: %s", path, err)
	}
	return settings, nil
}

func (settings *SettingsJSON) GetBaseConfig() *BaseConfig {
	return &settings.BaseConfig
}

// ParseSettingsJSON overrides the current values with the keys present in
// reader. defpath is used to resolve relative file names when the
// document has no "path" key.
func (settings *SettingsJSON) ParseSettingsJSON(defpath string, reader io.Reader) error {
	internalBaseConfig := &struct {
		Path                *string
		LeftId              *int
		RightId             *int
		Cost                *int
		Priority            *int
		AccentNotation      *string
		UnicodeEscape       *bool
		Comments            *bool
		Delimiter           *string
		PosTable            *map[string][]string
		PosTableFile        *string
		PronunciationPlugin *[]json.RawMessage
	}{}

	decoder := json.NewDecoder(reader)
	err := decoder.Decode(internalBaseConfig)
	if err != nil {
		return err
	}
	if internalBaseConfig.Path == nil {
		settings.path = defpath
	} else {
		settings.path = *internalBaseConfig.Path
	}
	if internalBaseConfig.LeftId != nil {
		settings.LeftId = *internalBaseConfig.LeftId
	}
	if internalBaseConfig.RightId != nil {
		settings.RightId = *internalBaseConfig.RightId
	}
	if internalBaseConfig.Cost != nil {
		settings.Cost = *internalBaseConfig.Cost
	}
	if internalBaseConfig.Priority != nil {
		settings.Priority = *internalBaseConfig.Priority
	}
	if internalBaseConfig.AccentNotation != nil {
		settings.AccentNotation = *internalBaseConfig.AccentNotation
	}
	if internalBaseConfig.UnicodeEscape != nil {
		settings.UnicodeEscape = *internalBaseConfig.UnicodeEscape
	}
	if internalBaseConfig.Comments != nil {
		settings.Comments = *internalBaseConfig.Comments
	}
	if internalBaseConfig.Delimiter != nil {
		settings.Delimiter = *internalBaseConfig.Delimiter
	}
	if internalBaseConfig.PosTable != nil {
		if settings.PosTable == nil {
			settings.PosTable = map[string][]string{}
		}
		for label, tiers := range *internalBaseConfig.PosTable {
			settings.PosTable[label] = tiers
		}
	}
	if internalBaseConfig.PosTableFile != nil {
		settings.PosTableFile = settings.getPath(*internalBaseConfig.PosTableFile)
	}
	if internalBaseConfig.PronunciationPlugin != nil {
		settings.pronunciationPlugin = *internalBaseConfig.PronunciationPlugin
	}
	return nil
}

func (settings *SettingsJSON) getPath(path string) string {
	if path == "" || filepath.IsAbs(path) || settings.path == "" {
		return path
	}
	return filepath.Join(settings.path, path)
}

// GetPosTable builds the label table: the standard labels, then the
// entries of PosTableFile, then the inline PosTable entries.
func (settings *SettingsJSON) GetPosTable() (*dictionary.PosTable, error) {
	pt := dictionary.NewDefaultPosTable()
	if settings.PosTableFile != "" {
		f, err := os.Open(settings.PosTableFile)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		err = pt.ReadPosTable(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %s", settings.PosTableFile, err)
		}
	}
	labels := make([]string, 0, len(settings.PosTable))
	for label := range settings.PosTable {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	for _, label := range labels {
		pt.Set(label, settings.PosTable[label]...)
	}
	return pt, nil
}

func (settings *SettingsJSON) GetPronunciationPluginArray(makeproc MakePronunciationPluginFunc) ([]PronunciationPlugin, error) {
	ret := []PronunciationPlugin{}
	pname := &struct {
		Class *string
		Name  *string
	}{}
	for _, raw := range settings.pronunciationPlugin {
		pname.Class, pname.Name = nil, nil
		err := json.Unmarshal(raw, pname)
		if err != nil {
			return ret, err
		}
		var name string
		if pname.Class != nil {
			name = *pname.Class
		}
		if pname.Name != nil {
			name = *pname.Name
		}
		plugin := makeproc(name)
		if plugin == nil {
			return ret, fmt.Errorf("PronunciationPlugin: %s is unknown", name)
		}
		err = json.Unmarshal(raw, plugin.GetConfigStruct())
		if err != nil {
			return ret, err
		}
		ret = append(ret, plugin)
	}
	return ret, nil
}

// AddPronunciationPlugin appends a plugin entry as if it had been listed
// in the settings file.
func (settings *SettingsJSON) AddPronunciationPlugin(name string) error {
	raw, err := json.Marshal(map[string]string{"class": name})
	if err != nil {
		return err
	}
	settings.pronunciationPlugin = append(settings.pronunciationPlugin, raw)
	return nil
}
