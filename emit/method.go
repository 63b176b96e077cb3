// Copyright 2026 The Piglet Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package emit

import (
	"fmt"
	"strings"

	"github.com/escalante-bio/piglet-codegen/ir"
)

// renderMethod emits one generated client method plus, if it has two or
// more return elements, its reply struct. A method with no return elements
// or values returns a bare error; such a method never reads the response
// stream, so neither the stream variable nor the reply reader is emitted
// for it.
func renderMethod(receiver string, m ir.ResolvedMethod) string {
	var out strings.Builder

	hasReply := len(m.ReturnElements) > 1
	replyName := m.ReplyName + "Reply"

	if hasReply {
		out.WriteString(renderReplyStruct(replyName, m.ReturnElements))
	}

	combined := append(append([]ir.Parameter{}, m.ReturnElements...), m.ReturnValues...)
	expected := len(combined)

	returnType := ""
	switch {
	case hasReply:
		returnType = replyName
	case len(m.ReturnElements) == 1:
		returnType = m.ReturnElements[0].Type.GoType()
	case len(m.ReturnValues) == 1:
		returnType = m.ReturnValues[0].Type.GoType()
	}

	// failStmt renders the statement(s) returning errExpr from the method
	// body at two-tab indentation.
	failStmt := func(errExpr string) string {
		if returnType == "" {
			return "return " + errExpr
		}
		return fmt.Sprintf("var zero %s\n\t\treturn zero, %s", returnType, errExpr)
	}

	fmt.Fprintf(&out, "func (o *%s) %s(ctx context.Context", receiver, m.CallName)
	for _, a := range m.Arguments {
		fmt.Fprintf(&out, ", %s %s", a.Name, a.Type.GoType())
	}
	if returnType == "" {
		out.WriteString(") error {\n")
	} else {
		fmt.Fprintf(&out, ") (%s, error) {\n", returnType)
	}

	out.WriteString("\tvar args bytes.Buffer\n")
	for _, a := range m.Arguments {
		out.WriteString("\t" + encodeStmt("&args", a.Name, a.Type) + "\n")
	}

	streamVar := "stream"
	if expected == 0 {
		streamVar = "_"
	}
	fmt.Fprintf(&out, "\tcount, %s, err := o.Client.Act(ctx, o.Address, %d, %d, %d, args.Bytes())\n",
		streamVar, m.InterfaceID, m.CallType, m.MethodID)
	out.WriteString("\tif err != nil {\n")
	fmt.Fprintf(&out, "\t\t%s\n\t}\n", failStmt(fmt.Sprintf(
		"transport.WithContext(err, func() string { return fmt.Sprintf(%q%s) })",
		receiver+"."+m.CallName+argFormatSuffix(m.Arguments), argDebugList(m.Arguments))))

	fmt.Fprintf(&out, "\tif count != %d {\n\t\t%s\n\t}\n", expected,
		failStmt(fmt.Sprintf("&transport.ArityError{Expected: %d, Got: count}", expected)))

	if expected > 0 {
		out.WriteString("\tbody, err := io.ReadAll(stream)\n\tif err != nil {\n")
		fmt.Fprintf(&out, "\t\t%s\n\t}\n", failStmt("err"))
		out.WriteString("\treply := bytes.NewReader(body)\n")

		for _, p := range combined {
			if p.Type.Kind == ir.KindVecStructRef {
				out.WriteString("\t" + decodeVecStructStmt("reply", p.Name, p.Type, failStmt("err")) + "\n")
				continue
			}
			fmt.Fprintf(&out, "\t%s, err := %s\n\tif err != nil {\n\t\t%s\n\t}\n",
				p.Name, decodeExpr("reply", p.Type), failStmt("err"))
		}
	}

	switch {
	case hasReply:
		fmt.Fprintf(&out, "\treturn %s{%s}, nil\n", replyName, fieldAssignList(m.ReturnElements))
	case len(m.ReturnElements) == 1:
		fmt.Fprintf(&out, "\treturn %s, nil\n", m.ReturnElements[0].Name)
	case len(m.ReturnValues) == 1:
		fmt.Fprintf(&out, "\treturn %s, nil\n", m.ReturnValues[0].Name)
	default:
		out.WriteString("\treturn nil\n")
	}

	out.WriteString("}\n")
	return out.String()
}

func renderReplyStruct(name string, elements []ir.Parameter) string {
	var b strings.Builder
	fmt.Fprintf(&b, "type %s struct {\n", name)
	for _, e := range elements {
		fmt.Fprintf(&b, "\t%s %s\n", exported(e.Name), e.Type.GoType())
	}
	b.WriteString("}\n\n")
	return b.String()
}

func fieldAssignList(elements []ir.Parameter) string {
	parts := make([]string, len(elements))
	for i, e := range elements {
		parts[i] = fmt.Sprintf("%s: %s", exported(e.Name), e.Name)
	}
	return strings.Join(parts, ", ")
}

// argFormatSuffix renders the ": name=%+v, name=%+v" tail appended to a
// method's fmt.Sprintf context format string, so every failed call reports
// every argument it was invoked with.
func argFormatSuffix(args []ir.Parameter) string {
	if len(args) == 0 {
		return ""
	}
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.Name + "=%+v"
	}
	return ": " + strings.Join(parts, ", ")
}

// argDebugList renders the ", name, name" tail of extra fmt.Sprintf
// arguments matching argFormatSuffix's verbs.
func argDebugList(args []ir.Parameter) string {
	if len(args) == 0 {
		return ""
	}
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.Name
	}
	return ", " + strings.Join(parts, ", ")
}
