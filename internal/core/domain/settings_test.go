package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wisp/internal/core/domain"
)

func TestSettings_GetSet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key   domain.SettingKey
		value string
		want  string
	}{
		{key: domain.SettingLanguage, value: "ZH-CN", want: "zh-cn"},
		{key: domain.SettingUsePinyin, value: "true", want: "true"},
		{key: domain.SettingPinyinStyle, value: " Initials ", want: "initials"},
		{key: domain.SettingMaxResults, value: "25", want: "25"},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			t.Parallel()

			s := domain.DefaultSettings()
			require.NoError(t, s.Set(tt.key, tt.value))

			got, err := s.Get(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSettings_SetRejectsInvalidValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key     domain.SettingKey
		value   string
		wantErr error
	}{
		{key: domain.SettingLanguage, value: " ", wantErr: domain.ErrInvalidSettingValue},
		{key: domain.SettingUsePinyin, value: "maybe", wantErr: domain.ErrInvalidSettingValue},
		{key: domain.SettingPinyinStyle, value: "tones", wantErr: domain.ErrInvalidSettingValue},
		{key: domain.SettingMaxResults, value: "-1", wantErr: domain.ErrInvalidSettingValue},
		{key: domain.SettingMaxResults, value: "ten", wantErr: domain.ErrInvalidSettingValue},
		{key: "colour", value: "blue", wantErr: domain.ErrUnknownSetting},
	}

	for _, tt := range tests {
		s := domain.DefaultSettings()
		err := s.Set(tt.key, tt.value)
		require.ErrorContains(t, err, tt.wantErr.Error(), "%s=%q", tt.key, tt.value)
		assert.Equal(t, domain.DefaultSettings(), s, "failed Set must not modify settings")
	}

	_, err := domain.DefaultSettings().Get("colour")
	require.ErrorContains(t, err, domain.ErrUnknownSetting.Error())
}

func TestSettings_Normalize(t *testing.T) {
	t.Parallel()

	got := domain.Settings{UsePinyin: true, PinyinStyle: "bogus"}.Normalize()

	assert.Equal(t, domain.Settings{
		Language:    domain.DefaultLanguage,
		UsePinyin:   true,
		PinyinStyle: domain.PinyinFull,
		MaxResults:  domain.DefaultMaxResults,
	}, got)
}

func TestResourceKeys(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "pinyin_style_full", domain.PinyinFull.ResourceKey())
	assert.Equal(t, "pinyin_style_initials", domain.PinyinInitials.ResourceKey())
	assert.Equal(t, "setting_use_pinyin", domain.SettingUsePinyin.ResourceKey())
}

func TestDescriptor_New(t *testing.T) {
	t.Parallel()

	assert.Equal(t, domain.DefaultSettings(), domain.SettingsDocument.New())
	assert.Equal(t, 0, domain.Descriptor[int]{Name: "Counter"}.New())
}
