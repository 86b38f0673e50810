// Command bmicalc computes Body Mass Index assessments from the command
// line, over HTTP and as MCP tools.
package main

func main() {
	Execute()
}
