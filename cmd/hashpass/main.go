// Command hashpass prints the bcrypt hash of a password, for seeding
// accounts by hand.
package main

import (
    "fmt"
    "os"

    "github.com/urfave/cli/v2"
    "golang.org/x/crypto/bcrypt"

    "github.com/NHDanDz/movieapp-sub001/internal/utils"
)

func main() {
    app := &cli.App{
        Name:      "hashpass",
        Usage:     "hash a password with bcrypt",
        ArgsUsage: "<password>",
        Flags: []cli.Flag{
            &cli.IntFlag{
                Name:    "cost",
                Aliases: []string{"c"},
                Value:   bcrypt.DefaultCost,
                Usage:   "bcrypt cost factor (4..31)",
            },
            &cli.StringFlag{
                Name:  "verify",
                Usage: "verify the password against this existing hash instead of hashing",
            },
        },
        Action: func(c *cli.Context) error {
            password := c.Args().First()
            if password == "" {
                return cli.Exit("usage: hashpass [--cost N] <password>", 2)
            }
            if existing := c.String("verify"); existing != "" {
                if !utils.VerifyPassword(existing, password) {
                    return cli.Exit("mismatch", 1)
                }
                fmt.Println("ok")
                return nil
            }
            hash, err := utils.HashPassword(password, c.Int("cost"))
            if err != nil {
                return cli.Exit(err.Error(), 1)
            }
            fmt.Println(hash)
            return nil
        },
    }
    if err := app.Run(os.Args); err != nil {
        fmt.Fprintln(os.Stderr, err)
        os.Exit(1)
    }
}
