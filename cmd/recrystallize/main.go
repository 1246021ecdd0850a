// Command recrystallize runs the cellular-automaton recrystallization
// simulator headlessly, reports progress to stdout and an optional
// websocket server, and prints the fitted Avrami parameters on
// completion: parse flags, build the simulation, run it, report.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"recrystallize/config"
	"recrystallize/lattice"
	"recrystallize/progress"
	"recrystallize/sim"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		log.Fatalf("recrystallize: %v", err)
	}
}

func newRootCommand() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "recrystallize",
		Short: "Run a 3D cellular-automaton recrystallization simulation",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(v)
		},
	}

	flags := cmd.Flags()
	flags.IntSlice("dims", []int{128, 128, 128}, "volume dimensions Nx,Ny,Nz")
	flags.Float64Slice("resolution", []float64{0.25, 0.25, 0.25}, "voxel size Dx,Dy,Dz")
	flags.Float64("nucleation-rate", 0.0001, "nucleation probability per unit volume per step")
	flags.Int("neighborhood", 0, "0=VonNeumann 1=EightCell 2=FourteenCell 3=EighteenCell 4=TwentyCell 5=Moore")
	flags.Int64("seed", 0, "RNG base seed, used only with --deterministic")
	flags.Bool("deterministic", false, "pin worker RNG streams to --seed instead of wall-clock time")
	flags.Int("workers", 0, "tile goroutines per step (0 = GOMAXPROCS)")
	flags.Int("serve", 0, "serve live progress over websocket on this port (0 = disabled)")
	flags.String("config", "", "optional settings.json overlay")

	_ = v.BindPFlags(flags)
	v.SetEnvPrefix("RECRYSTALLIZE")
	v.AutomaticEnv()

	return cmd
}

func run(v *viper.Viper) error {
	settings := config.Default()
	if path := v.GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		settings = loaded
	}

	// Seed viper's defaults from settings before reading flags back out, so
	// a --config file genuinely overrides the built-in flag defaults when
	// the corresponding flag wasn't passed explicitly on the command line
	// or via a RECRYSTALLIZE_* env var.
	simSettings := settings.Simulation
	v.SetDefault("dims", []int{simSettings.Nx, simSettings.Ny, simSettings.Nz})
	v.SetDefault("resolution", []float64{simSettings.Dx, simSettings.Dy, simSettings.Dz})
	v.SetDefault("nucleation-rate", simSettings.NucleationRate)
	v.SetDefault("neighborhood", simSettings.Neighborhood)
	v.SetDefault("seed", simSettings.Seed)

	dims := v.GetIntSlice("dims")
	res := v.GetFloat64Slice("resolution")
	if len(dims) != 3 || len(res) != 3 {
		log.Fatalf("recrystallize: --dims and --resolution each need exactly 3 values")
	}

	params := sim.Params{
		Dimensions:     sim.Dimensions{Nx: dims[0], Ny: dims[1], Nz: dims[2]},
		Resolution:     sim.Resolution{Dx: res[0], Dy: res[1], Dz: res[2]},
		NucleationRate: v.GetFloat64("nucleation-rate"),
		Neighborhood:   lattice.Neighborhood(v.GetInt("neighborhood")),
		Seed:           v.GetInt64("seed"),
		Deterministic:  v.GetBool("deterministic"),
		Workers:        v.GetInt("workers"),
	}

	fmt.Println("=== Recrystallization Simulator ===")
	fmt.Printf("Dimensions: %d x %d x %d\n", params.Dimensions.Nx, params.Dimensions.Ny, params.Dimensions.Nz)
	fmt.Printf("Nucleation rate: %g\n", params.NucleationRate)
	fmt.Printf("Neighborhood: %d\n", params.Neighborhood)

	sink := progress.Sink(progress.Nop{})
	var server *progress.Server
	if port := v.GetInt("serve"); port > 0 {
		server = progress.NewServer()
		sink = server
		mux := http.NewServeMux()
		mux.HandleFunc("/ws", server.HandleWebSocket)
		go func() {
			fmt.Printf("Progress server listening on :%d/ws\n", port)
			if err := http.ListenAndServe(fmt.Sprintf(":%d", port), mux); err != nil {
				log.Printf("recrystallize: progress server stopped: %v", err)
			}
		}()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	result, err := sim.Run(ctx, params, &printingSink{inner: sink})
	if err != nil {
		return err
	}

	fmt.Println("✅ Complete")
	fmt.Printf("Grain count: %d\n", result.GrainCount)
	fmt.Printf("Steps: %d\n", result.Steps)
	if result.Avrami.Fitted {
		fmt.Printf("Avrami k=%.6f n=%.6f\n", result.Avrami.K, result.Avrami.N)
	} else {
		fmt.Println("⚠️  Avrami parameters could not be fitted")
	}
	return nil
}

// printingSink narrates progress on stdout while forwarding every update
// to the real sink (a no-op or the websocket server).
type printingSink struct {
	inner progress.Sink
}

func (p *printingSink) Progress(u progress.Update) {
	fmt.Printf("%.1f%% recrystallized\n", u.Percent)
	p.inner.Progress(u)
}

func (p *printingSink) Warning(msg string) {
	fmt.Printf("⚠️  %s\n", msg)
	p.inner.Warning(msg)
}
