package errors

import (
	goerrors "errors"
	"fmt"
	"os"
	"strconv"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCode(t *testing.T) {
	Convey("Each error maps to its exit status", t, func() {
		So(Code(nil), ShouldEqual, 0)
		So(Code(NewSourceUnavailable("insurance.csv", os.ErrNotExist)), ShouldEqual, CodeSourceUnavailable)
		So(Code(NewParse(3, "bmi", "x", strconv.ErrSyntax)), ShouldEqual, CodeParse)
		So(Code(NewEmptyInput("no records")), ShouldEqual, CodeEmptyInput)
		So(Code(goerrors.New("boom")), ShouldEqual, CodeInternal)
	})

	Convey("Wrapped errors keep their exit status", t, func() {
		err := fmt.Errorf("loading: %w", NewParse(3, "bmi", "x", strconv.ErrSyntax))
		So(Code(err), ShouldEqual, CodeParse)
	})
}

func TestMessages(t *testing.T) {
	Convey("Messages carry the context needed to fix the input", t, func() {
		err := NewSourceUnavailable("/data/insurance.csv", os.ErrNotExist)
		So(err.Error(), ShouldEqual, `source "/data/insurance.csv" unavailable: file does not exist`)
		So(goerrors.Is(err, os.ErrNotExist), ShouldBeTrue)

		perr := NewParse(7, "charges", "12,5", strconv.ErrSyntax)
		So(perr.Error(), ShouldEqual, `row 7, column "charges": cannot parse "12,5": invalid syntax`)
		So(goerrors.Is(perr, strconv.ErrSyntax), ShouldBeTrue)

		So(NewParse(2, "", "", goerrors.New("wrong number of fields")).Error(), ShouldEqual, "row 2: wrong number of fields")
	})
}
