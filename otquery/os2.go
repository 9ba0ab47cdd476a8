package otquery

import (
	"encoding/binary"

	"github.com/npillmayer/outlinesvg/internal/fontload"
)

// OS2TableInfo is a typed query view over the metric fields of OpenType
// table 'OS/2'. Fields beyond version 0 are zero if the table is older.
type OS2TableInfo struct {
	Version        uint16
	XAvgCharWidth  int16
	WeightClass    uint16
	WidthClass     uint16
	FsSelection    uint16
	TypoAscender   int16
	TypoDescender  int16
	TypoLineGap    int16
	WinAscent      uint16
	WinDescent     uint16
	XHeight        int16 // version >= 2
	CapHeight      int16 // version >= 2
	UseTypoMetrics bool  // fsSelection bit 7
}

const (
	os2V0Size = 78
	os2V2Size = 96
)

// OS2Info decodes table 'OS/2' from raw bytes.
// Returns (info, true) on success, or (zero, false) if table is missing/too short.
func OS2Info(f *fontload.ScalableFont) (OS2TableInfo, bool) {
	b, ok := f.Table("OS/2")
	if !ok {
		return OS2TableInfo{}, false
	}
	return decodeOS2(b)
}

func decodeOS2(b []byte) (OS2TableInfo, bool) {
	var info OS2TableInfo
	if len(b) < os2V0Size {
		return info, false
	}
	info.Version = binary.BigEndian.Uint16(b[0:2])
	info.XAvgCharWidth = i16(b[2:4])
	info.WeightClass = binary.BigEndian.Uint16(b[4:6])
	info.WidthClass = binary.BigEndian.Uint16(b[6:8])
	info.FsSelection = binary.BigEndian.Uint16(b[62:64])
	info.TypoAscender = i16(b[68:70])
	info.TypoDescender = i16(b[70:72])
	info.TypoLineGap = i16(b[72:74])
	info.WinAscent = binary.BigEndian.Uint16(b[74:76])
	info.WinDescent = binary.BigEndian.Uint16(b[76:78])
	info.UseTypoMetrics = info.FsSelection&(1<<7) != 0
	if info.Version >= 2 && len(b) >= os2V2Size {
		info.XHeight = i16(b[86:88])
		info.CapHeight = i16(b[88:90])
	}
	return info, true
}

// HHeaTableInfo is a typed query view over OpenType table 'hhea'.
type HHeaTableInfo struct {
	Ascender         int16
	Descender        int16
	LineGap          int16
	AdvanceWidthMax  uint16
	NumberOfHMetrics uint16
}

const hheaTableSize = 36

// HHeaInfo decodes table 'hhea' from raw bytes.
// Returns (info, true) on success, or (zero, false) if table is missing/too short.
func HHeaInfo(f *fontload.ScalableFont) (HHeaTableInfo, bool) {
	b, ok := f.Table("hhea")
	if !ok {
		return HHeaTableInfo{}, false
	}
	return decodeHHea(b)
}

func decodeHHea(b []byte) (HHeaTableInfo, bool) {
	var info HHeaTableInfo
	if len(b) < hheaTableSize {
		return info, false
	}
	info.Ascender = i16(b[4:6])
	info.Descender = i16(b[6:8])
	info.LineGap = i16(b[8:10])
	info.AdvanceWidthMax = binary.BigEndian.Uint16(b[10:12])
	info.NumberOfHMetrics = binary.BigEndian.Uint16(b[34:36])
	return info, true
}
