package report

import (
	"encoding/binary"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"firestige.xyz/ifreport/internal/core"
	"firestige.xyz/ifreport/internal/ifquery"
)

// fakeQuerier serves canned buffers per selector and records every call.
type fakeQuerier struct {
	buffers map[ifquery.Selector][]byte
	errs    map[ifquery.Selector]error
	calls   []ifquery.Selector
}

func (f *fakeQuerier) Query(ifname string, sel ifquery.Selector) ([]byte, error) {
	f.calls = append(f.calls, sel)
	if err, ok := f.errs[sel]; ok {
		return nil, err
	}
	buf, ok := f.buffers[sel]
	if !ok {
		return nil, fmt.Errorf("%w: %s", core.ErrInterfaceNotFound, ifname)
	}
	return buf, nil
}

func bufWithFlags(flags uint16) []byte {
	buf := make([]byte, ifquery.BufferSize)
	binary.NativeEndian.PutUint16(buf[16:18], flags)
	return buf
}

func bufWithIPv4(a, b, c, d byte) []byte {
	buf := make([]byte, ifquery.BufferSize)
	copy(buf[20:24], []byte{a, b, c, d})
	return buf
}

func bufWithMAC(mac []byte) []byte {
	buf := make([]byte, ifquery.BufferSize)
	copy(buf[18:24], mac)
	return buf
}

func newFakeQuerier() *fakeQuerier {
	return &fakeQuerier{
		buffers: map[ifquery.Selector][]byte{
			ifquery.SelectorFlags:   bufWithFlags(ifquery.FlagUp | ifquery.FlagBroadcast),
			ifquery.SelectorAddr:    bufWithIPv4(192, 168, 1, 10),
			ifquery.SelectorNetmask: bufWithIPv4(255, 255, 255, 0),
			ifquery.SelectorHWAddr:  bufWithMAC([]byte{0x00, 0x1a, 0x2b, 0x3c, 0x4d, 0x5e}),
		},
		errs: map[ifquery.Selector]error{},
	}
}

func TestBuildAllFields(t *testing.T) {
	b := NewBuilder(newFakeQuerier())

	rep, err := b.Build("eth0", Fields())
	assert.NoError(t, err)
	assert.Equal(t, Fields(), rep.Fields())

	for field, want := range map[string]string{
		FieldName:    "eth0",
		FieldStatus:  "up",
		FieldIP:      "192.168.1.10",
		FieldNetmask: "255.255.255.0",
		FieldMAC:     "00.1a.2b.3c.4d.5e",
	} {
		got, ok := rep.Get(field)
		assert.True(t, ok, field)
		assert.Equal(t, want, got, field)
	}
}

func TestBuildOrderMatchesRequest(t *testing.T) {
	b := NewBuilder(newFakeQuerier())

	fields := []string{FieldMAC, FieldName, FieldStatus}
	rep, err := b.Build("eth0", fields)
	assert.NoError(t, err)
	assert.Equal(t, fields, rep.Fields())
}

func TestBuildNamePerformsNoQuery(t *testing.T) {
	f := newFakeQuerier()
	b := NewBuilder(f)

	rep, err := b.Build("eth0", []string{FieldName})
	assert.NoError(t, err)
	assert.Equal(t, 1, rep.Len())
	assert.Empty(t, f.calls)
}

func TestBuildOneQueryPerField(t *testing.T) {
	f := newFakeQuerier()
	b := NewBuilder(f)

	// ip and netmask use distinct selectors; each field issues exactly
	// one query, in request order, with no buffer reuse.
	_, err := b.Build("eth0", []string{FieldIP, FieldNetmask, FieldStatus})
	assert.NoError(t, err)
	assert.Equal(t, []ifquery.Selector{
		ifquery.SelectorAddr,
		ifquery.SelectorNetmask,
		ifquery.SelectorFlags,
	}, f.calls)
}

func TestBuildUnknownFieldBeforeAnyQuery(t *testing.T) {
	f := newFakeQuerier()
	b := NewBuilder(f)

	rep, err := b.Build("eth0", []string{FieldStatus, "mtu"})
	assert.Nil(t, rep)
	assert.ErrorIs(t, err, core.ErrUnknownField)
	assert.Empty(t, f.calls, "no query may be issued for a request that cannot complete")
}

func TestBuildFailFastNoPartialReport(t *testing.T) {
	f := newFakeQuerier()
	f.errs[ifquery.SelectorAddr] = fmt.Errorf("%w: eth0", core.ErrInterfaceNotFound)
	b := NewBuilder(f)

	rep, err := b.Build("eth0", []string{FieldName, FieldStatus, FieldIP, FieldMAC})
	assert.Nil(t, rep, "no partial report even when earlier fields succeeded")
	assert.ErrorIs(t, err, core.ErrInterfaceNotFound)
	assert.Contains(t, err.Error(), "field ip", "error is tagged with the failing field")
}

func TestBuildPermissionDenied(t *testing.T) {
	f := newFakeQuerier()
	f.errs[ifquery.SelectorHWAddr] = fmt.Errorf("%w: eth0", core.ErrPermissionDenied)
	b := NewBuilder(f)

	_, err := b.Build("eth0", []string{FieldMAC})
	assert.ErrorIs(t, err, core.ErrPermissionDenied)
}

func TestBuildMalformedBuffer(t *testing.T) {
	f := newFakeQuerier()
	// A truncated buffer means the provider and selector disagree.
	f.buffers[ifquery.SelectorHWAddr] = make([]byte, 10)
	b := NewBuilder(f)

	_, err := b.Build("eth0", []string{FieldMAC})
	assert.ErrorIs(t, err, core.ErrMalformedBuffer)
}

func TestBuildEmptyInterfaceName(t *testing.T) {
	b := NewBuilder(newFakeQuerier())

	_, err := b.Build("", []string{FieldName})
	assert.ErrorIs(t, err, core.ErrQueryFailed)
}

func TestBuildIdempotent(t *testing.T) {
	b := NewBuilder(newFakeQuerier())
	fields := []string{FieldName, FieldStatus, FieldIP}

	first, err := b.Build("eth0", fields)
	assert.NoError(t, err)
	second, err := b.Build("eth0", fields)
	assert.NoError(t, err)

	assert.Equal(t, first.Fields(), second.Fields())
	for _, field := range fields {
		v1, _ := first.Get(field)
		v2, _ := second.Get(field)
		assert.Equal(t, v1, v2, field)
	}
}

func TestBuildDownInterface(t *testing.T) {
	f := newFakeQuerier()
	f.buffers[ifquery.SelectorFlags] = bufWithFlags(ifquery.FlagBroadcast | ifquery.FlagMulticast)
	b := NewBuilder(f)

	rep, err := b.Build("eth1", []string{FieldStatus})
	assert.NoError(t, err)
	status, _ := rep.Get(FieldStatus)
	assert.Equal(t, "down", status)
}

func TestNewBuilderDefaultQuerier(t *testing.T) {
	b := NewBuilder(nil)
	assert.NotNil(t, b.querier)
	assert.IsType(t, &ifquery.IoctlQuerier{}, b.querier)
}
