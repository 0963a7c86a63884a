// seehuhn.de/go/glyphsheet - character tables for font files
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package document

import (
	"encoding/binary"
	"math"
	"sync"
	"time"

	"seehuhn.de/go/icc"
)

// sRGBProfile returns an ICC version 2 display profile for the sRGB color
// space (IEC 61966-2-1), relative to the D50 illuminant of the ICC
// profile connection space.
var sRGBProfile = sync.OnceValue(func() []byte {
	trc := curveTag(1024, sRGBToLinear)
	p := &icc.Profile{
		Version:      icc.Version2_1_0,
		Class:        icc.DisplayDeviceProfile,
		ColorSpace:   icc.RGBSpace,
		PCS:          icc.PCSXYZSpace,
		CreationDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		TagData: map[icc.TagType][]byte{
			icc.ProfileDescription: descTag(sRGBCondition),
			icc.Copyright:          textTag("No copyright, use freely"),
			tagType("wtpt"):        xyzTag(0.9642, 1.0, 0.8249),
			tagType("rXYZ"):        xyzTag(0.4361, 0.2225, 0.0139),
			tagType("gXYZ"):        xyzTag(0.3851, 0.7169, 0.0971),
			tagType("bXYZ"):        xyzTag(0.1431, 0.0606, 0.7141),
			tagType("rTRC"):        trc,
			tagType("gTRC"):        trc,
			tagType("bTRC"):        trc,
		},
	}
	return p.Encode()
})

const sRGBCondition = "sRGB IEC61966-2.1"

// sRGBToLinear is the sRGB transfer function.
func sRGBToLinear(x float64) float64 {
	if x <= 0.04045 {
		return x / 12.92
	}
	return math.Pow((x+0.055)/1.055, 2.4)
}

func tagType(name string) icc.TagType {
	return icc.TagType(binary.BigEndian.Uint32([]byte(name)))
}

// xyzTag encodes an XYZType tag with a single entry.
func xyzTag(x, y, z float64) []byte {
	buf := append([]byte("XYZ "), 0, 0, 0, 0)
	for _, v := range []float64{x, y, z} {
		buf = binary.BigEndian.AppendUint32(buf, uint32(int32(math.Round(v*65536))))
	}
	return buf
}

// curveTag encodes a curveType tag which samples f at n equally spaced
// points in [0, 1].
func curveTag(n int, f func(float64) float64) []byte {
	buf := append([]byte("curv"), 0, 0, 0, 0)
	buf = binary.BigEndian.AppendUint32(buf, uint32(n))
	for i := range n {
		y := f(float64(i) / float64(n-1))
		buf = binary.BigEndian.AppendUint16(buf, uint16(math.Round(y*65535)))
	}
	return buf
}

// textTag encodes a textType tag.
func textTag(s string) []byte {
	buf := append([]byte("text"), 0, 0, 0, 0)
	buf = append(buf, s...)
	return append(buf, 0)
}

// descTag encodes a version 2 textDescriptionType tag with an ASCII
// description only.
func descTag(s string) []byte {
	buf := append([]byte("desc"), 0, 0, 0, 0)
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(s)+1))
	buf = append(buf, s...)
	buf = append(buf, 0)
	buf = append(buf, make([]byte, 4+4+2+1+67)...) // Unicode and ScriptCode parts
	return buf
}
