// Package greeting เลือกข้อความทักทายบนหน้า task list
package greeting

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Templates ข้อความทักทายทั้ง 5 แบบ (%s = ชื่อผู้ใช้)
var Templates = [...]string{
	"How are you,\n%s?",
	"Welcome back,\n%s!",
	"We were missing you,\n%s!",
	"It's great to see you back,\n%s!",
	"It's such a lovely day, isn't it \n%s?",
}

// Source แหล่งสุ่ม; *math/rand/v2.Rand ใช้ได้ตรงๆ
type Source interface {
	IntN(n int) int
}

// Pick สุ่ม template หนึ่งแบบแล้วใส่ชื่อแบบ title-case
func Pick(src Source, name string) string {
	return Format(src.IntN(len(Templates)), name)
}

// Format ใช้ template ตาม index (index นอกช่วงจะวนกลับด้วย modulo)
func Format(index int, name string) string {
	n := len(Templates)
	index = ((index % n) + n) % n
	return fmt.Sprintf(Templates[index], TitleCase(name))
}

// TitleCase คำ = ตัวอักษรที่ติดกัน อะไรที่ไม่ใช่ตัวอักษร (. _ - @ ตัวเลข) ขึ้นคำใหม่
// เช่น "john.doe" -> "John.Doe", "user1abc" -> "User1Abc"
func TitleCase(name string) string {
	caser := cases.Title(language.Und)

	var b strings.Builder
	b.Grow(len(name))

	start := -1
	for i, r := range name {
		if unicode.IsLetter(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			b.WriteString(caser.String(name[start:i]))
			start = -1
		}
		b.WriteRune(r)
	}
	if start >= 0 {
		b.WriteString(caser.String(name[start:]))
	}
	return b.String()
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// Default ใช้ generator กลางของ math/rand/v2 (ปลอดภัยกับหลาย goroutine)
var Default Source = globalSource{}
