// Copyright 2026 LiveKit, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package wom

import (
	"bytes"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const secret = "hunter2"

func TestFormatRedacts(t *testing.T) {
	w := Wrap(secret)
	for _, verb := range []string{"%v", "%+v", "%#v", "%s", "%q", "%x", "%d", "%10v"} {
		t.Run(verb, func(t *testing.T) {
			out := fmt.Sprintf(verb, w)
			require.NotContains(t, out, secret)
			require.Contains(t, out, redacted)
		})
	}

	require.Equal(t, "wom.Wom[string]{****}", w.String())
	require.Equal(t, "wom.Wom[string]{****}", fmt.Sprint(w))
	require.Equal(t, "wom.Wom[[]int]{****}", fmt.Sprint(Wrap([]int{1})))
}

func TestFormatNested(t *testing.T) {
	type config struct {
		Name   string
		Secret *Wom[string]
		Token  Wom[string]
		key    *Wom[string]
		inline Wom[string]
	}
	c := &config{
		Name:   "svc",
		Secret: Wrap(secret),
		key:    Wrap(secret),
	}
	c.Token.Set(secret)
	c.inline.Set(secret)

	for _, verb := range []string{"%v", "%+v", "%#v"} {
		out := fmt.Sprintf(verb, c)
		require.NotContains(t, out, secret, verb)
		require.Contains(t, out, "svc", verb)
	}

	var buf bytes.Buffer
	slog.New(slog.NewJSONHandler(&buf, nil)).Info("config", "config", c)
	require.NotContains(t, buf.String(), secret)
}

func TestViolationLogLevels(t *testing.T) {
	var buf bytes.Buffer
	globalLog = slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	t.Cleanup(func() { SetLogger(nil) })

	w := Wrap(secret)
	_, err := w.TryRef()
	require.ErrorIs(t, err, ErrReadOfWriteOnlyValue)
	require.Contains(t, buf.String(), `"level":"DEBUG"`)
	require.NotContains(t, buf.String(), `"level":"ERROR"`)

	buf.Reset()
	require.Panics(t, func() { w.Ref() })
	require.Contains(t, buf.String(), `"level":"ERROR"`)
	require.Contains(t, buf.String(), `"type":"string"`)
	require.NotContains(t, buf.String(), secret)
}

func TestFormatConsumed(t *testing.T) {
	w := Wrap(secret)
	w.IntoInner()
	require.Equal(t, "wom.Wom[string]{****}", fmt.Sprint(w))

	var nilWom *Wom[string]
	require.NotPanics(t, func() { _ = fmt.Sprint(nilWom) })
}

func TestSlogRedacts(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewJSONHandler(&buf, nil))
	l.Info("stored credentials", "secret", Wrap(secret), "count", 1)

	out := buf.String()
	require.NotContains(t, out, secret)
	require.Contains(t, out, `"secret":"wom.Wom[string]{****}"`)
}

func TestZapRedacts(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := zap.New(core)
	l.Info("stored", zap.Object("secret", Wrap(secret)), zap.Any("token", Wrap([]byte(secret))))

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, map[string]interface{}{
		"secret": map[string]interface{}{"type": "string", "value": redacted},
		"token":  map[string]interface{}{"type": "[]uint8", "value": redacted},
	}, entries[0].ContextMap())
}
