package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"port": 8080,
		"upload_dir": "/tmp/uploads",
		"default_doc_type": "policy",
		"allowed_extensions": ["pdf", "txt"],
		"log_format": "json"
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "/tmp/uploads", cfg.UploadDir)
	assert.Equal(t, "policy", cfg.DefaultDocType)
	assert.Equal(t, []string{"pdf", "txt"}, cfg.AllowedExtensions)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(`{ invalid json }`), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"defaults", Defaults(), ""},
		{"empty", Config{}, ""},
		{"port out of range", Config{Port: 70000}, "Port"},
		{"bad log level", Config{LogLevel: "verbose"}, "LogLevel"},
		{"bad log format", Config{LogFormat: "xml"}, "LogFormat"},
		{"zero-length extension", Config{AllowedExtensions: []string{""}}, "AllowedExtensions"},
		{"uppercase extension", Config{AllowedExtensions: []string{"PDF"}}, "AllowedExtensions"},
		{"unknown extension", Config{AllowedExtensions: []string{"rtf"}}, `extension "rtf"`},
		{"concurrency too high", Config{BatchConcurrency: 1000}, "BatchConcurrency"},
		{"negative min text length", Config{MinTextLength: -1}, "MinTextLength"},
		{"min text length of one", Config{MinTextLength: 1}, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), "config error")
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestValidate_UploadDirIsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	cfg := Config{UploadDir: file}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Port: 9000, AllowedExtensions: []string{"txt"}}

	merged := cfg.MergeWithDefaults(Defaults())

	assert.Equal(t, 9000, merged.Port)
	assert.Equal(t, []string{"txt"}, merged.AllowedExtensions)
	assert.Equal(t, "uploads", merged.UploadDir)
	assert.Equal(t, 16, merged.MaxFileSizeMB)
	assert.Equal(t, 50, merged.MinTextLength)
	assert.Equal(t, "contract", merged.DefaultDocType)
	assert.Equal(t, 4, merged.BatchConcurrency)
	assert.Equal(t, "info", merged.LogLevel)
	assert.Equal(t, "text", merged.LogFormat)

	// The receiver is not modified
	assert.Empty(t, cfg.UploadDir)
}

func TestMergeWithDefaults_MinTextLength(t *testing.T) {
	unset := Config{}
	assert.Equal(t, 50, unset.MergeWithDefaults(Defaults()).MinTextLength)

	set := Config{MinTextLength: 1}
	assert.Equal(t, 1, set.MergeWithDefaults(Defaults()).MinTextLength)
}

func TestMergeWithDefaults_DoesNotShareSlices(t *testing.T) {
	defaults := Defaults()
	merged := (&Config{}).MergeWithDefaults(defaults)

	merged.AllowedExtensions[0] = "changed"
	assert.Equal(t, "pdf", defaults.AllowedExtensions[0])
}

func TestAllowsFile(t *testing.T) {
	cfg := Defaults()

	assert.True(t, cfg.AllowsFile("contract.pdf"))
	assert.True(t, cfg.AllowsFile("CONTRACT.PDF"))
	assert.True(t, cfg.AllowsFile("legacy.doc"))
	assert.False(t, cfg.AllowsFile("sheet.xlsx"))
	assert.False(t, cfg.AllowsFile("README"))
	assert.False(t, cfg.AllowsFile(".txt.exe"))
}

func TestMaxFileSizeBytes(t *testing.T) {
	cfg := Config{MaxFileSizeMB: 16}
	assert.Equal(t, int64(16*1024*1024), cfg.MaxFileSizeBytes())
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("PORT", "7070")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("MAX_FILE_SIZE_MB", "not-a-number")

	cfg := Defaults()
	cfg.ApplyEnv()

	assert.Equal(t, 7070, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 16, cfg.MaxFileSizeMB)
	assert.Equal(t, "uploads", cfg.UploadDir)
}
