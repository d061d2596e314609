// Command drawy draws text as large colored ASCII-art letters.
package main

func main() {
	Execute()
}
