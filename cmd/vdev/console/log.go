package console

import (
	"fmt"
	"os"
)

const PictoThermometer = "🌡"
const PictoHumidity = "💧"
const PictoPressure = "🗜"
const PictoMountain = "⛰"
const PictoStop = "🚫"
const PictoPin = "📌"

func Errorf(msg string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "%s: %s\n", Red("ERROR"), fmt.Sprintf(msg, args...))
}

func Infof(msg string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stdout, "%s %s\n", White("..."), fmt.Sprintf(msg, args...))
}

func PInfof(picto, msg string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stdout, "%s %s\n", picto, fmt.Sprintf(msg, args...))
}

func Printf(msg string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stdout, msg, args...)
}
