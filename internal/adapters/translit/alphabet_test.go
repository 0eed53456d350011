package translit_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wisp/internal/adapters/translit"
	"go.trai.ch/wisp/internal/core/domain"
	"go.trai.ch/wisp/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type settingsBox struct {
	mu sync.Mutex
	s  domain.Settings
}

func (b *settingsBox) get() domain.Settings {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.s
}

func (b *settingsBox) set(s domain.Settings) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.s = s
}

func newAlphabet(t *testing.T, conv *mocks.MockConverter, box *settingsBox) (*translit.Alphabet, *translit.Cache) {
	t.Helper()

	c := translit.New(manualConfig(time.Hour), nil)
	t.Cleanup(func() { _ = c.Close() })
	return translit.NewAlphabet(c, conv, box.get), c
}

func TestAlphabet_DisabledReturnsInput(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	conv := mocks.NewMockConverter(ctrl)
	box := &settingsBox{s: domain.DefaultSettings()}

	a, c := newAlphabet(t, conv, box)

	got, err := a.Translate("你好")
	require.NoError(t, err)
	assert.Equal(t, "你好", got)
	assert.Equal(t, 0, c.Len())
}

func TestAlphabet_EnabledConvertsOnce(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	conv := mocks.NewMockConverter(ctrl)
	conv.EXPECT().Convert("你好", domain.PinyinFull).Return("nihao", nil).Times(1)

	s := domain.DefaultSettings()
	s.UsePinyin = true
	box := &settingsBox{s: s}

	a, _ := newAlphabet(t, conv, box)

	for range 3 {
		got, err := a.Translate("你好")
		require.NoError(t, err)
		assert.Equal(t, "nihao", got)
	}
}

func TestAlphabet_StyleChangeInvalidatesCache(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	conv := mocks.NewMockConverter(ctrl)
	gomock.InOrder(
		conv.EXPECT().Convert("你好", domain.PinyinFull).Return("nihao", nil),
		conv.EXPECT().Convert("你好", domain.PinyinInitials).Return("nh", nil),
	)

	s := domain.DefaultSettings()
	s.UsePinyin = true
	box := &settingsBox{s: s}

	a, _ := newAlphabet(t, conv, box)

	got, err := a.Translate("你好")
	require.NoError(t, err)
	assert.Equal(t, "nihao", got)

	s.PinyinStyle = domain.PinyinInitials
	box.set(s)

	got, err = a.Translate("你好")
	require.NoError(t, err)
	assert.Equal(t, "nh", got)

	got, err = a.Translate("你好")
	require.NoError(t, err)
	assert.Equal(t, "nh", got)
}

func TestAlphabet_ToggleOffAndOn(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	conv := mocks.NewMockConverter(ctrl)
	conv.EXPECT().Convert("微信", domain.PinyinFull).Return("weixin", nil).Times(1)

	s := domain.DefaultSettings()
	s.UsePinyin = true
	box := &settingsBox{s: s}

	a, _ := newAlphabet(t, conv, box)

	got, err := a.Translate("微信")
	require.NoError(t, err)
	assert.Equal(t, "weixin", got)

	s.UsePinyin = false
	box.set(s)
	got, err = a.Translate("微信")
	require.NoError(t, err)
	assert.Equal(t, "微信", got)

	s.UsePinyin = true
	box.set(s)
	got, err = a.Translate("微信")
	require.NoError(t, err)
	assert.Equal(t, "weixin", got, "re-enabling must reuse the cached value")
}

func TestAlphabet_ConverterError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	conv := mocks.NewMockConverter(ctrl)
	errConvert := errors.New("dictionary unavailable")
	conv.EXPECT().Convert("中文", domain.PinyinFull).Return("", errConvert)

	s := domain.DefaultSettings()
	s.UsePinyin = true
	box := &settingsBox{s: s}

	a, c := newAlphabet(t, conv, box)

	_, err := a.Translate("中文")
	require.ErrorIs(t, err, errConvert)
	assert.Equal(t, 0, c.Len())
}
