package cli

import "fmt"

type ResetCmd struct {
	Force bool `help:"Actually wipe all data. Required."`
}

func (c *ResetCmd) Run(ctx *Context) error {
	if !c.Force {
		return fmt.Errorf("this deletes every task, session, goal, and reflection; pass --force to confirm")
	}
	ctx.Store.ClearAll()
	ctx.Store.Flush()
	fmt.Println("All data cleared.")
	return nil
}
