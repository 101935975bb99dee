// Command placementctl is the operator CLI for the eligibility engine.
package main

func main() {
	Execute()
}
