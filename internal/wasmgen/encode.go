package wasmgen

import "errors"

const (
	secType     byte = 1
	secImport   byte = 2
	secFunction byte = 3
	secMemory   byte = 5
	secExport   byte = 7
	secStart    byte = 8
	secCode     byte = 10
)

const (
	externKindFunc   byte = 0x00
	externKindMemory byte = 0x02
)

// Encode assembles the complete binary wasm module: magic, version, then
// sections in the order the binary format requires (type, import,
// function, memory, export, start, code) — any section with zero entries
// is omitted entirely.
func (m *Module) Encode() ([]byte, error) {
	out := newByteWriter()
	out.Raw([]byte{0x00, 0x61, 0x73, 0x6D}) // "\0asm"
	out.Raw([]byte{0x01, 0x00, 0x00, 0x00}) // version 1

	if len(m.sigOrder) > 0 {
		out.Append(VecSection(secType, m.encodeTypeSection()))
	}
	if len(m.imports) > 0 {
		out.Append(VecSection(secImport, m.encodeImportSection()))
	}
	if len(m.funcs) > 0 {
		out.Append(VecSection(secFunction, m.encodeFunctionSection()))
	}
	if m.mem != nil {
		out.Append(VecSection(secMemory, m.encodeMemorySection()))
	}
	if len(m.exports) > 0 {
		expBytes, err := m.encodeExportSection()
		if err != nil {
			return nil, err
		}
		out.Append(VecSection(secExport, expBytes))
	}
	if m.start != nil {
		idx, err := m.funcIndex(m.start)
		if err != nil {
			return nil, err
		}
		startBody := newByteWriter()
		startBody.U32(idx)
		out.Append(VecSection(secStart, startBody.Bytes()))
	}
	if len(m.funcs) > 0 {
		code, err := m.encodeCodeSection()
		if err != nil {
			return nil, err
		}
		out.Append(VecSection(secCode, code))
	}
	return out.Bytes(), nil
}

func (m *Module) encodeTypeSection() []byte {
	w := newByteWriter()
	w.U32(uint32(len(m.sigOrder)))
	for _, sig := range m.sigOrder {
		w.Byte(0x60) // func type tag
		w.U32(uint32(len(sig.params)))
		for _, p := range sig.params {
			w.Byte(byte(p))
		}
		w.U32(uint32(len(sig.result)))
		for _, r := range sig.result {
			w.Byte(byte(r))
		}
	}
	return w.Bytes()
}

func (m *Module) encodeImportSection() []byte {
	w := newByteWriter()
	w.U32(uint32(len(m.imports)))
	for _, imp := range m.imports {
		w.Name(imp.ExternalModule)
		w.Name(imp.ExternalField)
		w.Byte(externKindFunc)
		w.U32(imp.Sig.index)
	}
	return w.Bytes()
}

func (m *Module) encodeFunctionSection() []byte {
	w := newByteWriter()
	w.U32(uint32(len(m.funcs)))
	for _, f := range m.funcs {
		w.U32(f.sig.index)
	}
	return w.Bytes()
}

func (m *Module) encodeMemorySection() []byte {
	w := newByteWriter()
	w.U32(1)
	if m.mem.HasMax {
		w.Byte(0x01)
		w.U32(m.mem.InitialPages)
		w.U32(m.mem.MaximumPages)
	} else {
		w.Byte(0x00)
		w.U32(m.mem.InitialPages)
	}
	return w.Bytes()
}

func (m *Module) encodeExportSection() ([]byte, error) {
	w := newByteWriter()
	w.U32(uint32(len(m.exports)))
	for _, exp := range m.exports {
		w.Name(exp.External)
		if m.mem != nil && exp.Internal == m.mem.Name {
			w.Byte(externKindMemory)
			w.U32(0)
			continue
		}
		idx, err := m.exportFuncIndex(exp.Internal)
		if err != nil {
			return nil, err
		}
		w.Byte(externKindFunc)
		w.U32(idx)
	}
	return w.Bytes(), nil
}

func (m *Module) exportFuncIndex(internal string) (uint32, error) {
	base := uint32(len(m.imports))
	for i, f := range m.funcs {
		if f.name == internal {
			return base + uint32(i), nil
		}
	}
	return 0, errExportNotFound
}

var errExportNotFound = errors.New("wasmgen: export target not found")

func (m *Module) encodeCodeSection() ([]byte, error) {
	w := newByteWriter()
	w.U32(uint32(len(m.funcs)))
	for _, f := range m.funcs {
		body := newByteWriter()
		body.U32(uint32(len(f.locals)))
		for _, l := range f.locals {
			body.U32(1)
			body.Byte(byte(l))
		}
		body.Append(f.body)
		body.Byte(opEnd)

		w.U32(uint32(body.Len()))
		w.Append(body.Bytes())
	}
	return w.Bytes(), nil
}
