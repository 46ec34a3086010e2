package types

import (
	"fmt"
	"strings"
)

// String renders t on a single line: i32, u8, f64, i32*, [32 x i32*],
// [4 x 8 x f32], { i64, f32 } and name { ... } for named structs.
func (t *Type) String() string {
	switch t.kind {
	case KindInt:
		if t.signed || t.bits == 1 {
			return fmt.Sprintf("i%d", t.bits)
		}
		return fmt.Sprintf("u%d", t.bits)
	case KindFloat:
		return fmt.Sprintf("f%d", t.bits)
	case KindPtr:
		return t.elem.String() + "*"
	case KindArray:
		return arrayPrefix(t) + " " + t.elem.String() + "]"
	case KindStruct:
		parts := make([]string, len(t.fields))
		for i, f := range t.fields {
			parts[i] = f.String()
		}
		body := "{ " + strings.Join(parts, ", ") + " }"
		if t.name != "" {
			return t.name + " " + body
		}
		return body
	default:
		return "<" + t.kind.String() + ">"
	}
}

func arrayPrefix(t *Type) string {
	d := t.dim
	switch {
	case d.Z > 1:
		return fmt.Sprintf("[%d x %d x %d x", d.X, d.Y, d.Z)
	case d.Y > 1:
		return fmt.Sprintf("[%d x %d x", d.X, d.Y)
	default:
		return fmt.Sprintf("[%d x", d.X)
	}
}

// Pretty renders t across multiple lines, breaking structs so that every
// element sits on its own line indented two spaces per nesting level.
// Types that contain no struct render as String does.
func Pretty(t *Type) string {
	var sb strings.Builder
	pretty(&sb, t, "")
	return sb.String()
}

func pretty(sb *strings.Builder, t *Type, indent string) {
	switch t.kind {
	case KindPtr:
		if t.elem.containsStruct() {
			pretty(sb, t.elem, indent)
			sb.WriteString("*")
			return
		}
	case KindArray:
		if t.elem.containsStruct() {
			sb.WriteString(indent + arrayPrefix(t) + "\n")
			pretty(sb, t.elem, indent+"  ")
			sb.WriteString("\n" + indent + "]")
			return
		}
	case KindStruct:
		sb.WriteString(indent)
		if t.name != "" {
			sb.WriteString(t.name + " ")
		}
		sb.WriteString("{\n")
		for i, f := range t.fields {
			pretty(sb, f, indent+"  ")
			if i < len(t.fields)-1 {
				sb.WriteString(",")
			}
			sb.WriteString("\n")
		}
		sb.WriteString(indent + "}")
		return
	}
	sb.WriteString(indent + t.String())
}

func (t *Type) containsStruct() bool {
	switch t.kind {
	case KindStruct:
		return true
	case KindPtr, KindArray:
		return t.elem.containsStruct()
	default:
		return false
	}
}
