package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kubegrade/kubegrade/internal/domain"
)

const (
	appLabel       = "app=k8s-challenge"
	deploymentName = "k8s-challenge-app"

	toolProbeTimeout   = 5 * time.Second
	dockerProbeTimeout = 10 * time.Second
)

// DeployService drives the optional deploy/clean path: an ordered pipeline
// of named steps over external tooling, aborting on the first failure. It
// shares no state with grading.
type DeployService struct {
	runner   domain.CommandRunner
	reporter domain.StepReporter
	opts     domain.Options
}

func NewDeployService(runner domain.CommandRunner, reporter domain.StepReporter, opts domain.Options) *DeployService {
	return &DeployService{runner: runner, reporter: reporter, opts: opts}
}

type step struct {
	name string
	hint string
	run  func(context.Context) (string, error)
}

// Deploy builds the demo image, loads it into the kind cluster, applies the
// manifests, and waits for the deployment to become available.
func (s *DeployService) Deploy(ctx context.Context) error {
	steps := []step{
		{name: "Docker running", hint: "Start Docker Desktop and try again", run: s.checkDocker},
		{name: "kubectl installed", hint: "See README.md Step 0 to install kubectl", run: s.checkKubectl},
		{name: "kind installed", hint: "See README.md Step 0 to install kind", run: s.checkKind},
		{name: "kind cluster", hint: "Check Docker resources and retry", run: s.ensureCluster},
		{name: "Build image", hint: "Inspect the docker build output above", run: s.buildImage},
		{name: "Load image into kind", hint: "Check that the cluster is healthy", run: s.loadImage},
		{name: "Apply manifests", hint: "Fix the reported manifest errors and re-run", run: s.applyManifests},
		{name: "Wait for deployment", run: s.waitReady},
		{name: "Cluster status", run: s.showStatus},
	}
	return s.runSteps(ctx, steps)
}

// Clean deletes the challenge resources. The kind cluster itself is left
// alone; removing it is suggested to the user instead.
func (s *DeployService) Clean(ctx context.Context) error {
	steps := []step{
		{name: "Delete resources", hint: "Is the cluster still reachable?", run: s.deleteResources},
	}
	if err := s.runSteps(ctx, steps); err != nil {
		return err
	}
	s.reporter.Note(fmt.Sprintf("To delete the kind cluster: kind delete cluster --name %s", s.opts.ClusterName))
	return nil
}

func (s *DeployService) runSteps(ctx context.Context, steps []step) error {
	for _, st := range steps {
		s.reporter.Start(st.name)
		detail, err := st.run(ctx)
		if err != nil {
			s.reporter.Failure(st.name, err.Error(), st.hint)
			return fmt.Errorf("%s: %w", st.name, err)
		}
		s.reporter.Success(st.name, detail)
	}
	return nil
}

func (s *DeployService) checkDocker(context.Context) (string, error) {
	res, err := s.runner.RunWithTimeout(dockerProbeTimeout, "docker", "info")
	if failed(res, err) != nil {
		return "", errors.New("Docker is not running")
	}
	return "", nil
}

func (s *DeployService) checkKubectl(context.Context) (string, error) {
	res, err := s.runner.RunWithTimeout(toolProbeTimeout, "kubectl", "version", "--client")
	if failed(res, err) != nil {
		return "", errors.New("kubectl not found")
	}
	return "", nil
}

func (s *DeployService) checkKind(context.Context) (string, error) {
	res, err := s.runner.RunWithTimeout(toolProbeTimeout, "kind", "version")
	if failed(res, err) != nil {
		return "", errors.New("kind not found")
	}
	return "", nil
}

func (s *DeployService) ensureCluster(ctx context.Context) (string, error) {
	res, err := s.runner.Run(ctx, "kind", "get", "clusters")
	if ferr := failed(res, err); ferr != nil {
		return "", ferr
	}
	for _, line := range strings.Fields(res.Stdout) {
		if line == s.opts.ClusterName {
			return "Cluster exists", nil
		}
	}
	res, err = s.runner.Run(ctx, "kind", "create", "cluster", "--name", s.opts.ClusterName)
	if ferr := failed(res, err); ferr != nil {
		return "", ferr
	}
	return "Cluster created", nil
}

func (s *DeployService) buildImage(ctx context.Context) (string, error) {
	res, err := s.runner.Run(ctx, "docker", "build", "-t", s.opts.Image, s.opts.BuildContext)
	if ferr := failed(res, err); ferr != nil {
		return "", ferr
	}
	return s.opts.Image, nil
}

func (s *DeployService) loadImage(ctx context.Context) (string, error) {
	res, err := s.runner.Run(ctx, "kind", "load", "docker-image", s.opts.Image, "--name", s.opts.ClusterName)
	if ferr := failed(res, err); ferr != nil {
		return "", ferr
	}
	return "", nil
}

func (s *DeployService) applyManifests(ctx context.Context) (string, error) {
	res, err := s.runner.Run(ctx, "kubectl", "apply", "-f", s.opts.ManifestDir)
	if ferr := failed(res, err); ferr != nil {
		return "", ferr
	}
	s.noteLines(res.Stdout)
	return "", nil
}

// waitReady never aborts the pipeline: a deployment that is not available
// within the timeout is reported and left for the user to inspect.
func (s *DeployService) waitReady(ctx context.Context) (string, error) {
	res, err := s.runner.Run(ctx, "kubectl", "wait",
		"--for=condition=available", "deployment/"+deploymentName,
		fmt.Sprintf("--timeout=%ds", s.opts.WaitTimeoutSeconds))
	if failed(res, err) != nil {
		return "Not ready yet; run 'kubectl get pods' to check status", nil
	}
	return "Deployment is ready", nil
}

func (s *DeployService) showStatus(ctx context.Context) (string, error) {
	for _, resource := range []string{"pods", "services"} {
		res, err := s.runner.Run(ctx, "kubectl", "get", resource, "-l", appLabel)
		if failed(res, err) == nil {
			s.noteLines(res.Stdout)
		}
	}
	return "", nil
}

func (s *DeployService) deleteResources(ctx context.Context) (string, error) {
	res, err := s.runner.Run(ctx, "kubectl", "delete", "-f", s.opts.ManifestDir, "--ignore-not-found")
	if ferr := failed(res, err); ferr != nil {
		return "", ferr
	}
	return "", nil
}

func (s *DeployService) noteLines(out string) {
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if line != "" {
			s.reporter.Note(line)
		}
	}
}

// failed folds the runner's two failure modes into one error: the command
// could not run, or it ran and exited non-zero.
func failed(res domain.CommandResult, err error) error {
	if err != nil {
		return err
	}
	if res.ExitCode != 0 {
		msg := strings.TrimSpace(res.Stderr)
		if msg == "" {
			msg = fmt.Sprintf("exit code %d", res.ExitCode)
		}
		return errors.New(msg)
	}
	return nil
}
