package generator

import (
	"fmt"
	"strings"
)

// Names used inside the generated script.
const (
	helpVar   = "usage"
	tableName = "opts"
)

// accessorFunc is the option accessor emitted verbatim into every generated
// script. With no arguments it prints all table keys sorted; with one
// argument it prints the option's value (or "false" for an unset switch);
// with two it prints an arbitrary field; with three or more it sets a field
// to the remaining words joined by spaces.
const accessorFunc = `opt() {
	if [ $# -eq 0 ]; then
		echo $(printf '%s\n' "${!opts[@]}" | sort)
	elif [ $# -eq 1 ]; then
		if [ -n "${opts[${1}value]+x}" ]; then
			echo "${opts[${1}value]}"
		elif [ -z "${opts[${1}argument]+x}" ]; then
			echo false
		fi
	elif [ $# -eq 2 ]; then
		echo "${opts[$1$2]}"
	else
		opts[$1$2]="${*:3}"
	fi
}
`

// Emit renders the extracted model as bash source: the help variable, the
// option-state table, the accessor function, the getopt invocation and the
// dispatch loop, in that order. Later statements reference the earlier
// declarations, so the order is significant. Emit is a pure function of doc.
func Emit(doc *Document) string {
	var b strings.Builder
	emitHelp(&b, doc.Help)
	emitTable(&b, doc.Options)
	b.WriteString(accessorFunc)
	emitGetopt(&b, doc.Options)
	emitDispatch(&b, doc.Options)
	return b.String()
}

func emitHelp(b *strings.Builder, help string) {
	fmt.Fprintf(b, "%s=%s\n", helpVar, quote(help))
}

// tableField is one populated Option field flattened into a table entry.
type tableField struct {
	name  string
	value string
}

// tableFields flattens an option into its populated fields, in declaration
// order. Absent argument and value fields are skipped, not emitted empty.
func tableFields(o *Option) []tableField {
	fields := []tableField{
		{"short", o.Short},
		{"long", o.Long},
	}
	if o.Argument != "" {
		fields = append(fields, tableField{"argument", o.Argument})
	}
	fields = append(fields, tableField{"description", o.Description})
	if o.Value != "" {
		fields = append(fields, tableField{"value", o.Value})
	}
	return fields
}

func emitTable(b *strings.Builder, options []Option) {
	fmt.Fprintf(b, "declare -A %s\n", tableName)
	for i := range options {
		o := &options[i]
		for _, f := range tableFields(o) {
			fmt.Fprintf(b, "%s[%s%s]=%s\n", tableName, o.Short, f.name, quote(f.value))
		}
	}
}

// getoptLists builds the comma-joined short and long option lists passed to
// getopt(1). Options taking an argument carry a trailing colon.
func getoptLists(options []Option) (shorts, longs string) {
	ss := make([]string, 0, len(options))
	ls := make([]string, 0, len(options))
	for i := range options {
		o := &options[i]
		suffix := ""
		if o.TakesArgument() {
			suffix = ":"
		}
		ss = append(ss, o.Short+suffix)
		ls = append(ls, o.Long+suffix)
	}
	return strings.Join(ss, ","), strings.Join(ls, ",")
}

// emitGetopt hands the script's argument vector to getopt(1) and resets the
// positional parameters to its validated, reordered output. getopt inserts
// the -- separator ahead of the positionals and rejects unknown options, so
// the dispatch loop below only ever sees declared ones.
func emitGetopt(b *strings.Builder, options []Option) {
	shorts, longs := getoptLists(options)
	fmt.Fprintf(b, "args=$(getopt -o '%s' -l '%s' -- \"$@\") || exit 1\n", shorts, longs)
	b.WriteString("eval set -- \"$args\"\n")
}

func emitDispatch(b *strings.Builder, options []Option) {
	b.WriteString("while [ $# -gt 0 ]; do\n")
	b.WriteString("\tcase \"$1\" in\n")
	for i := range options {
		o := &options[i]
		fmt.Fprintf(b, "\t-%s|--%s)\n", o.Short, o.Long)
		switch {
		case o.Short == "h":
			fmt.Fprintf(b, "\t\techo \"$%s\"\n", helpVar)
			b.WriteString("\t\texit 0\n")
		case o.TakesArgument():
			fmt.Fprintf(b, "\t\t%s[%svalue]=\"$2\"\n", tableName, o.Short)
			b.WriteString("\t\tshift\n")
		default:
			fmt.Fprintf(b, "\t\t%s[%svalue]=true\n", tableName, o.Short)
		}
		b.WriteString("\t\t;;\n")
	}
	b.WriteString("\t--)\n\t\tshift\n\t\tbreak\n\t\t;;\n")
	// Unreachable unless the getopt lists and the case arms disagree.
	b.WriteString("\t*)\n\t\texit 1\n\t\t;;\n")
	b.WriteString("\tesac\n")
	b.WriteString("\tshift\n")
	b.WriteString("done\n")
}
