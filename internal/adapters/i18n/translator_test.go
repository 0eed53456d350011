package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wisp/internal/adapters/i18n"
	"go.trai.ch/wisp/internal/core/domain"
	"go.trai.ch/wisp/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestTranslator_Languages(t *testing.T) {
	t.Parallel()

	tr, err := i18n.NewTranslator()
	require.NoError(t, err)

	assert.Equal(t, []string{"en", "zh-cn"}, tr.Languages())
	assert.True(t, tr.Supports("en"))
	assert.True(t, tr.Supports("ZH_CN"))
	assert.False(t, tr.Supports("fr"))
}

func TestTranslator_Fallbacks(t *testing.T) {
	t.Parallel()

	tr, err := i18n.NewTranslator()
	require.NoError(t, err)

	tests := []struct {
		name     string
		language string
		key      string
		want     string
	}{
		{name: "default language", language: "en", key: "settings_saved", want: "Settings saved"},
		{name: "translated", language: "zh-cn", key: "settings_saved", want: "设置已保存"},
		{name: "unknown language uses default", language: "fr", key: "settings_saved", want: "Settings saved"},
		{name: "unknown key returns key", language: "zh-cn", key: "no_such_key", want: "no_such_key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tr.Translate(tt.language, tt.key))
		})
	}
}

func TestTranslator_EveryEnumIsDescribed(t *testing.T) {
	t.Parallel()

	tr, err := i18n.NewTranslator()
	require.NoError(t, err)

	var values []i18n.Describable
	for _, s := range domain.PinyinStyles {
		values = append(values, s)
	}
	for _, k := range domain.SettingKeys {
		values = append(values, k)
	}

	for _, lang := range tr.Languages() {
		for _, v := range values {
			got := i18n.Describe(tr, lang, v)
			assert.NotEqual(t, v.ResourceKey(), got, "%s has no %q entry", lang, v.ResourceKey())
			assert.NotEmpty(t, got)
		}
	}
}

func TestDescribe_UsesResourceKey(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	tr := mocks.NewMockTranslator(ctrl)
	tr.EXPECT().Translate("zh-cn", "pinyin_style_initials").Return("首字母")

	assert.Equal(t, "首字母", i18n.Describe(tr, "zh-cn", domain.PinyinInitials))
}
