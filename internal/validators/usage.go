package validators

import (
	"fmt"

	"github.com/NikunjSachdeva/DefiSensei-Bot/models"
)

type commandShape struct {
	args  int
	usage string
}

var shapes = map[string]commandShape{
	models.CommandRegister:        {args: 3, usage: "/register <username> <password> <email>"},
	models.CommandLogin:           {args: 2, usage: "/login <username> <password>"},
	models.CommandLogout:          {args: 0, usage: "/logout"},
	models.CommandDelete:          {args: 3, usage: "/delete <username> <password> <email>"},
	models.CommandRequestOTP:      {args: 1, usage: "/request_otp <email>"},
	models.CommandVerifyOTP:       {args: 2, usage: "/verify_otp <email> <otp>"},
	models.CommandRecoverUsername: {args: 1, usage: "/recover_username <email>"},
	models.CommandResetPassword:   {args: 2, usage: "/reset_password <email> <new_password>"},
	models.CommandCoin:            {args: 1, usage: "/coin <coin_id>"},
	models.CommandStock:           {args: 1, usage: "/stock <symbol>"},
	models.CommandForex:           {args: 2, usage: "/forex <from_currency> <to_currency>"},
	models.CommandPredict:         {args: 1, usage: "/predict <symbol>"},
}

// Usage returns the usage line of command, or "" for commands that take
// free-form or no arguments.
func Usage(command string) string {
	return shapes[command].usage
}

// CheckArgs rejects a wrong argument count with a [UsageError]. Commands
// without a known shape accept anything.
func CheckArgs(command string, args []string) error {
	shape, ok := shapes[command]
	if !ok || len(args) == shape.args {
		return nil
	}

	return &UsageError{
		Command: command,
		Usage:   shape.usage,
		Err:     fmt.Errorf("%w: want %d, got %d", ErrWrongArgCount, shape.args, len(args)),
	}
}
