package kconfiglang_test

import (
	"bytes"
	"testing"

	"gotest.tools/v3/assert"
	"gotest.tools/v3/assert/cmp"

	"github.com/Pix4D/kconfig-lang/kconfiglang"
)

func TestMakeLogLevels(t *testing.T) {
	type testCase struct {
		level     string
		wantDebug bool
		wantWarn  bool
	}

	test := func(t *testing.T, tc testCase) {
		var buf bytes.Buffer
		log, err := kconfiglang.MakeLog(&buf, tc.level)
		assert.NilError(t, err)

		log.Debug("a-debug")
		log.Warn("a-warn")

		assert.Equal(t, bytes.Contains(buf.Bytes(), []byte("msg=a-debug")), tc.wantDebug)
		assert.Equal(t, bytes.Contains(buf.Bytes(), []byte("msg=a-warn")), tc.wantWarn)
		assert.Assert(t, !bytes.Contains(buf.Bytes(), []byte("time=")), buf.String())
	}

	testCases := []testCase{
		{level: "debug", wantDebug: true, wantWarn: true},
		{level: "info", wantDebug: false, wantWarn: true},
		{level: "warn", wantDebug: false, wantWarn: true},
		{level: "error", wantDebug: false, wantWarn: false},
		{level: "silent", wantDebug: false, wantWarn: false},
	}

	for _, tc := range testCases {
		t.Run(tc.level, func(t *testing.T) { test(t, tc) })
	}
}

func TestMakeLogInvalidLevel(t *testing.T) {
	var buf bytes.Buffer

	log, err := kconfiglang.MakeLog(&buf, "loud")
	log.Warn("still logging")

	assert.Error(t, err, `invalid log level: "loud"`)
	assert.Assert(t, cmp.Contains(buf.String(), "msg=\"still logging\""))
}
