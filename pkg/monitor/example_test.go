package monitor_test

import (
	"fmt"
	"os"

	"github.com/selectdb/login_watch/pkg/login"
	"github.com/selectdb/login_watch/pkg/monitor"
)

func ExampleNewSecurityMonitor() {
	l := login.New(login.WithSelector(login.SequenceSelector(login.WrongPassword, login.Access, login.UnknownUser)))
	monitor.NewSecurityMonitor(l, os.Stdout)
	monitor.NewGeneralLogger(l, os.Stdout)
	pt := monitor.NewPartnershipTool(l, os.Stdout)
	l.Detach(pt)

	for i := 0; i < 3; i++ {
		ok := l.HandleLogin("bob", "mypass", "123.22.112.1")
		fmt.Println("access granted:", ok)
	}
	// Output:
	// SecurityMonitor	sending mail to sysadmin
	// GeneralLogger	add login data to log
	// access granted: false
	// access granted: true
	// access granted: false
}
