package pinyin_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wisp/internal/adapters/pinyin"
	"go.trai.ch/wisp/internal/core/domain"
	"pgregory.net/rapid"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	c := pinyin.NewConverter()

	tests := []struct {
		name  string
		text  string
		style domain.PinyinStyle
		want  string
	}{
		{name: "full syllables", text: "你好", style: domain.PinyinFull, want: "nihao"},
		{name: "initials", text: "你好", style: domain.PinyinInitials, want: "nh"},
		{name: "mixed latin and han", text: "QQ邮箱", style: domain.PinyinFull, want: "QQyouxiang"},
		{name: "mixed initials", text: "QQ邮箱", style: domain.PinyinInitials, want: "QQyx"},
		{name: "separated runs", text: "微信 Web 版", style: domain.PinyinFull, want: "weixin Web ban"},
		{name: "latin only", text: "Firefox", style: domain.PinyinFull, want: "Firefox"},
		{name: "full width folded", text: "ＱＱ", style: domain.PinyinFull, want: "QQ"},
		{name: "empty", text: "", style: domain.PinyinInitials, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := c.Convert(tt.text, tt.style)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConverter_UnknownStyle(t *testing.T) {
	t.Parallel()

	_, err := pinyin.NewConverter().Convert("你好", domain.PinyinStyle("tones"))
	require.ErrorContains(t, err, domain.ErrConversionFailed.Error())
}

func TestConverter_Deterministic(t *testing.T) {
	t.Parallel()

	c := pinyin.NewConverter()

	rapid.Check(t, func(rt *rapid.T) {
		text := rapid.String().Draw(rt, "text")
		style := rapid.SampledFrom(domain.PinyinStyles).Draw(rt, "style")

		first, err := c.Convert(text, style)
		if err != nil {
			rt.Fatalf("convert: %v", err)
		}
		second, err := c.Convert(text, style)
		if err != nil {
			rt.Fatalf("convert: %v", err)
		}
		if first != second {
			rt.Fatalf("non-deterministic: %q vs %q", first, second)
		}
		if pinyin.HasHan(first) && !pinyin.HasHan(text) {
			rt.Fatalf("conversion introduced Han characters: %q", first)
		}
	})
}

func TestHasHan(t *testing.T) {
	t.Parallel()

	assert.True(t, pinyin.HasHan("abc中"))
	assert.False(t, pinyin.HasHan("abc"))
	assert.False(t, pinyin.HasHan(""))
}
