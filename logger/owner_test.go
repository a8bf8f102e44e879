package logger

import (
	"strconv"
	"strings"
	"testing"

	"github.com/philipp01105/logthis/core"
)

const pkgPath = "github.com/philipp01105/logthis/logger"

type widget struct{}

func (w *widget) pointerOwner() Owner { return Self() }

func (w widget) valueOwner() Owner { return Self() }

func (w *widget) closureOwner() Owner {
	var o Owner
	func() { o = Self() }()
	return o
}

type box[T any] struct{ v T }

func (b *box[T]) owner() Owner { return Self() }

func TestOwner_Tag(t *testing.T) {
	if got := Tag("Message").String(); got != "Message" {
		t.Errorf("Tag() = %q", got)
	}
}

func TestOwner_Type(t *testing.T) {
	tests := []struct {
		name string
		got  Owner
		want string
	}{
		{"Type", Type[widget](), pkgPath + ".widget"},
		{"TypePointer", Type[*widget](), pkgPath + ".widget"},
		{"TypeOf", TypeOf(&widget{}), pkgPath + ".widget"},
		{"TypeOfBuiltin", TypeOf(3), "int"},
		{"TypeOfNil", TypeOf(nil), "<nil>"},
		{"TypeUnnamed", Type[[]string](), "[]string"},
		{"TypeStdlib", Type[strings.Builder](), "strings.Builder"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got.String() != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestOwner_Self(t *testing.T) {
	w := &widget{}
	want := pkgPath + ".widget"
	if got := w.pointerOwner().String(); got != want {
		t.Errorf("pointer receiver: %q, want %q", got, want)
	}
	if got := w.valueOwner().String(); got != want {
		t.Errorf("value receiver: %q, want %q", got, want)
	}
	if got := w.closureOwner().String(); got != want {
		t.Errorf("closure in method: %q, want %q", got, want)
	}
	if got := (&box[int]{}).owner().String(); got != pkgPath+".box" {
		t.Errorf("generic receiver: %q", got)
	}
	if got := Self().String(); got != pkgPath+".TestOwner_Self" {
		t.Errorf("plain function: %q", got)
	}
}

func TestReceiverType(t *testing.T) {
	tests := map[string]string{
		"main.(*MyStruct).New":                "main.MyStruct",
		"main.MyStruct.String":                "main.MyStruct",
		"main.main":                           "main.main",
		"main.main.func1":                     "main.main",
		"example.com/a/b.(*T[...]).Do":        "example.com/a/b.T",
		"example.com/a/b.T[...].Do":           "example.com/a/b.T",
		"gopkg.in/yaml%2ev3.(*decoder).parse": "gopkg.in/yaml%2ev3.decoder",
		"noDot":                               "noDot",
		"":                                    "???",
	}
	for in, want := range tests {
		if got := receiverType(in); got != want {
			t.Errorf("receiverType(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestOwner_Here(t *testing.T) {
	line := core.GetCaller(0).Line
	o := Here()
	want := "logger/owner_test.go:" + strconv.Itoa(line+1)
	if o.String() != want {
		t.Errorf("Here() = %q, want %q", o, want)
	}
}

func TestScope(t *testing.T) {
	l, out, errOut := newTestLogger(InfoLevel)
	s := l.For(Type[widget]())
	if s.Owner().String() != pkgPath+".widget" {
		t.Fatalf("Owner() = %q", s.Owner())
	}

	s.Info("Here is in MyStruct::new!")
	s.Warnf("%d warnings", 2)
	s.Error("boom")
	s.Debug("hidden")
	s.Debugf("hidden %d", 1)

	if strings.Count(out.String(), pkgPath+".widget @") != 2 {
		t.Errorf("stdout = %q", out.String())
	}
	if !strings.Contains(errOut.String(), pkgPath+".widget @") {
		t.Errorf("stderr = %q", errOut.String())
	}
	if strings.Contains(out.String(), "hidden") {
		t.Errorf("debug line passed an INFO threshold: %q", out.String())
	}
	if err := s.Log(WarnLevel, "via Log"); err != nil || !strings.Contains(out.String(), "via Log") {
		t.Errorf("Log() = %v, out = %q", err, out.String())
	}
}
