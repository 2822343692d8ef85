package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ccsysroot/internal/adapters/config"
	"go.trai.ch/ccsysroot/internal/core/domain"
	"go.trai.ch/ccsysroot/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newLoader(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	return config.NewLoader(logger)
}

func TestLoader_Load_Default(t *testing.T) {
	rules, err := newLoader(t).Load("")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultRewriteRules(), rules)
}

func TestLoader_Load_YAML(t *testing.T) {
	path := writeFile(t, "remap.yaml", `
version: "1"
keep:
  - /work
libraries:
  boost: [~]
  protobuf:
    - ""
    - /usr/include/google/protobuf
  qt5:
    - /usr/include/qt5
    - /usr/include/qt5/QtCore
`)

	rules, err := newLoader(t).Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"/work"}, rules.Keep)
	assert.Equal(t, []string{"boost", "protobuf", "qt5"}, rules.Table.Names())

	boost, ok := rules.Table.Lookup("boost")
	require.True(t, ok)
	assert.Equal(t, []domain.Replacement{domain.UnderSysroot()}, boost)

	protobuf, ok := rules.Table.Lookup("protobuf")
	require.True(t, ok)
	assert.Equal(t, []domain.Replacement{
		domain.UnderSysroot(),
		domain.Literal("/usr/include/google/protobuf"),
	}, protobuf)

	qt5, ok := rules.Table.Lookup("qt5")
	require.True(t, ok)
	assert.Equal(t, []domain.Replacement{
		domain.Literal("/usr/include/qt5"),
		domain.Literal("/usr/include/qt5/QtCore"),
	}, qt5)
}

func TestLoader_Load_YAMLNullMarker(t *testing.T) {
	path := writeFile(t, "remap.yaml", `
libraries:
  protobuf: [~, /usr/include/google/protobuf]
  opencv:
    - /usr/include/opencv4
    - null
`)

	rules, err := newLoader(t).Load(path)
	require.NoError(t, err)

	protobuf, ok := rules.Table.Lookup("protobuf")
	require.True(t, ok)
	assert.Equal(t, []domain.Replacement{
		domain.UnderSysroot(),
		domain.Literal("/usr/include/google/protobuf"),
	}, protobuf)

	opencv, ok := rules.Table.Lookup("opencv")
	require.True(t, ok)
	require.Len(t, opencv, 2)
	assert.Equal(t, "/usr/include/opencv4", opencv[0].Path)
	assert.True(t, opencv[1].IsUnderSysroot())
}

func TestLoader_Load_TOML(t *testing.T) {
	path := writeFile(t, "remap.toml", `
[libraries]
eigen3 = ["/usr/include/eigen3"]
include = [""]
`)

	rules, err := newLoader(t).Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{domain.DefaultKeepPrefix}, rules.Keep)
	assert.Equal(t, 2, rules.Table.Len())

	include, ok := rules.Table.Lookup("include")
	require.True(t, ok)
	assert.True(t, include[0].IsUnderSysroot())
}

func TestLoader_Load_YmlExtension(t *testing.T) {
	path := writeFile(t, "remap.YML", "libraries:\n  opencv: [/usr/include/opencv4]\n")

	rules, err := newLoader(t).Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"opencv"}, rules.Table.Names())
}

func TestLoader_Load_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr error
	}{
		{
			name:    "unsupported extension",
			file:    "remap.json",
			content: `{"libraries": {"boost": [""]}}`,
			wantErr: domain.ErrRemapFormatUnsupported,
		},
		{
			name:    "malformed yaml",
			file:    "remap.yaml",
			content: "libraries: [unterminated\n",
			wantErr: domain.ErrRemapParseFailed,
		},
		{
			name:    "unknown yaml field",
			file:    "remap.yaml",
			content: "libraries:\n  boost: [~]\nlibs: {}\n",
			wantErr: domain.ErrRemapParseFailed,
		},
		{
			name:    "malformed toml",
			file:    "remap.toml",
			content: "[libraries\n",
			wantErr: domain.ErrRemapParseFailed,
		},
		{
			name:    "unknown toml field",
			file:    "remap.toml",
			content: "extra = 1\n[libraries]\nboost = [\"\"]\n",
			wantErr: domain.ErrRemapParseFailed,
		},
		{
			name:    "empty file",
			file:    "remap.yaml",
			content: "",
			wantErr: domain.ErrRemapInvalid,
		},
		{
			name:    "library without replacements",
			file:    "remap.yaml",
			content: "libraries:\n  boost: []\n",
			wantErr: domain.ErrRemapInvalid,
		},
		{
			name:    "library name with dash",
			file:    "remap.yaml",
			content: "libraries:\n  qt-5: [~]\n",
			wantErr: domain.ErrRemapInvalid,
		},
		{
			name:    "relative replacement",
			file:    "remap.yaml",
			content: "libraries:\n  eigen3: [usr/include/eigen3]\n",
			wantErr: domain.ErrRemapInvalid,
		},
		{
			name:    "relative keep prefix",
			file:    "remap.toml",
			content: "keep = [\"work\"]\n[libraries]\nboost = [\"\"]\n",
			wantErr: domain.ErrRemapInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)
			_, err := newLoader(t).Load(path)
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr.Error())
		})
	}
}

func TestLoader_Load_MissingFile(t *testing.T) {
	_, err := newLoader(t).Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrRemapReadFailed.Error())
}
