package picker

import (
	"errors"
	"testing"

	"fyne.io/fyne/v2/test"
	nativedialog "github.com/sqweek/dialog"
	"github.com/stretchr/testify/assert"
)

func TestNewSelectsImplementation(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()
	w := a.NewWindow("picker")

	assert.IsType(t, &FynePicker{}, New(false, w, nil))
	assert.IsType(t, &NativePicker{}, New(true, w, nil))
}

func TestNativeExtensions(t *testing.T) {
	assert.Equal(t, []string{"jpg", "jpeg", "png", "bmp", "gif"}, nativeExtensions())
}

func TestNativeDeliver(t *testing.T) {
	var reported error
	p := &NativePicker{onError: func(err error) { reported = err }}

	cases := []struct {
		name     string
		path     string
		err      error
		want     string
		called   bool
		reported bool
	}{
		{"chosen", "/pics/a.png", nil, "/pics/a.png", true, false},
		{"cancelled", "", nativedialog.ErrCancelled, "", true, false},
		{"failed", "", errors.New("no display"), "", false, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reported = nil
			called := false
			got := "unset"
			p.deliver(tc.path, tc.err, func(path string) {
				called = true
				got = path
			})
			assert.Equal(t, tc.called, called)
			if tc.called {
				assert.Equal(t, tc.want, got)
			}
			assert.Equal(t, tc.reported, reported != nil)
		})
	}
}
